package auth

import (
	"context"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/repository"
	"github.com/cadastra/cadastro-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação: verificação de credenciais e
// emissão de token de acesso com subject = email.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha e emite um JWT. Usuário inexistente e senha
// incorreta devolvem o mesmo ErrCredenciaisInvalidas, sem distinção.
// Login não exige usuário verificado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerificarSenha(in.Senha, user.HashedPassword) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}
