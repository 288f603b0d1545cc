package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cadastra/cadastro-api/internal/application/auth"
	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/ports"
	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/entity"
	"github.com/cadastra/cadastro-api/internal/domain/repository"
	"github.com/cadastra/cadastro-api/pkg/validators"
)

// ValidadeCodigo janela de validade do código de verificação.
const ValidadeCodigo = 24 * time.Hour

// SignupUseCase orquestra o cadastro e a redenção do código de verificação.
// Estados de um usuário: UNVERIFIED (inicial) → VERIFIED (terminal). Não há
// estado EXPIRED persistido; a expiração é checada na hora da redenção.
type SignupUseCase struct {
	usuarioRepo repository.UsuarioRepository
	mailer      ports.Mailer
}

// NewSignupUseCase constrói o caso de uso de cadastro/verificação.
func NewSignupUseCase(usuarioRepo repository.UsuarioRepository, mailer ports.Mailer) *SignupUseCase {
	return &SignupUseCase{usuarioRepo: usuarioRepo, mailer: mailer}
}

// Cadastrar cria um usuário UNVERIFIED: valida a entrada, checa unicidade,
// gera o código com expiração de 24h, hasheia a senha e persiste. Toda
// rejeição de formato acontece antes de qualquer escrita. A resposta nunca
// inclui o código; ele vai apenas por email.
func (uc *SignupUseCase) Cadastrar(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	nome, err := validators.NormalizarNome(in.Nome)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntradaInvalida, err)
	}
	if !validators.ValidarEmail(in.Email) {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrEntradaInvalida)
	}
	telefone, err := validators.NormalizarTelefone(in.Telefone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntradaInvalida, err)
	}
	if err := validators.ValidarSenha(in.Senha); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntradaInvalida, err)
	}

	existing, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	codigo, err := GerarCodigoVerificacao(TamanhoCodigo)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashSenha(in.Senha)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiracao := now.Add(ValidadeCodigo)
	user := &entity.Usuario{
		ID:                uuid.New().String(),
		Nome:              nome,
		Email:             in.Email,
		HashedPassword:    hash,
		Celular:           telefone,
		Verificado:        false,
		CodigoVerificacao: &codigo,
		CodigoExpiracao:   &expiracao,
		CreatedAt:         now,
	}

	// Dois cadastros concorrentes com o mesmo email: a constraint única do
	// banco decide; a violação chega aqui já mapeada para ErrEmailJaCadastrado.
	if err := uc.usuarioRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Entrega do email é colaborador externo; falha não desfaz o cadastro.
	if err := uc.mailer.EnviarCodigoVerificacao(ctx, user.Email, codigo); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("falha no envio do código de verificação")
	}

	return &dto.SignupResponse{
		Status:  "pending_verification",
		Message: fmt.Sprintf("Código enviado para %s", user.Email),
		UserID:  user.ID,
	}, nil
}

// VerificarCodigo faz a transição UNVERIFIED → VERIFIED dado email + código.
// Replay sobre usuário já verificado é sucesso idempotente, não erro. A
// escrita final usa um guard otimista no repositório: se outra redenção
// concorrente venceu, o resultado também é idempotente.
func (uc *SignupUseCase) VerificarCodigo(ctx context.Context, in dto.VerificacaoRequest) (*dto.MessageResponse, error) {
	user, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if user.Verificado {
		return &dto.MessageResponse{Message: "Usuário já verificado"}, nil
	}
	if user.CodigoVerificacao == nil || *user.CodigoVerificacao != in.Codigo {
		return nil, domain.ErrCodigoInvalido
	}
	if user.CodigoExpiracao != nil && user.CodigoExpiracao.Before(time.Now()) {
		return nil, domain.ErrCodigoExpirado
	}

	if _, err := uc.usuarioRepo.MarcarVerificado(ctx, user.ID); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Verificação concluída com sucesso"}, nil
}
