package entity

import "time"

// Usuario representa o registro de identidade e verificação de um usuário.
// O ciclo de vida é UNVERIFIED → VERIFIED (terminal): criado com Verificado
// falso e um código com validade de 24h; a redenção bem-sucedida do código
// marca Verificado e limpa CodigoVerificacao/CodigoExpiracao de uma vez.
type Usuario struct {
	ID                string
	Nome              string
	Email             string // único
	HashedPassword    string // hash bcrypt, nunca a senha em claro após persistir
	Celular           string // único, apenas dígitos (10–11 com DDD)
	Verificado        bool
	CodigoVerificacao *string    // nulo após verificação
	CodigoExpiracao   *time.Time // sempre presente quando há código
	CreatedAt         time.Time
	DeletedAt         *time.Time // soft delete; nenhum fluxo o preenche hoje
}
