package repository

import (
	"context"

	"github.com/cadastra/cadastro-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// Implementações devolvem (nil, nil) quando o registro não existe.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// MarcarVerificado faz a transição UNVERIFIED → VERIFIED de forma atômica
	// (verificado = true, código e expiração limpos) apenas se o usuário ainda
	// não estiver verificado. Devolve false quando nenhuma linha foi alterada,
	// isto é, uma redenção concorrente venceu a corrida.
	MarcarVerificado(ctx context.Context, id string) (bool, error)
}
