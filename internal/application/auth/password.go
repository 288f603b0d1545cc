package auth

import "golang.org/x/crypto/bcrypt"

// HashSenha gera um hash bcrypt da senha com salt aleatório e custo padrão.
// Chamadas repetidas com a mesma senha produzem hashes diferentes.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificarSenha compara a senha candidata com o hash armazenado usando a
// comparação do próprio bcrypt, que re-deriva com o salt embutido no hash.
// Re-hashear e comparar strings jamais funcionaria: cada hash tem salt próprio.
func VerificarSenha(senha, hashArmazenado string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashArmazenado), []byte(senha)) == nil
}
