package signup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/signup"
	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/entity"
)

// usuarioRepoFake repositório em memória com a mesma semântica do adaptador
// PostgreSQL: (nil, nil) quando não existe, conflito em email duplicado e
// MarcarVerificado atômico condicionado a verificado = false.
type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
}

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{porEmail: map[string]*entity.Usuario{}}
}

func (f *usuarioRepoFake) Create(_ context.Context, u *entity.Usuario) error {
	if _, ok := f.porEmail[u.Email]; ok {
		return domain.ErrEmailJaCadastrado
	}
	cp := *u
	f.porEmail[u.Email] = &cp
	return nil
}

func (f *usuarioRepoFake) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	u, ok := f.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *usuarioRepoFake) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	for _, u := range f.porEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) MarcarVerificado(_ context.Context, id string) (bool, error) {
	for _, u := range f.porEmail {
		if u.ID == id && !u.Verificado {
			u.Verificado = true
			u.CodigoVerificacao = nil
			u.CodigoExpiracao = nil
			return true, nil
		}
	}
	return false, nil
}

// mailerFake captura os envios para inspeção nos testes.
type mailerFake struct {
	enviados []struct{ email, codigo string }
}

func (m *mailerFake) EnviarCodigoVerificacao(_ context.Context, email, codigo string) error {
	m.enviados = append(m.enviados, struct{ email, codigo string }{email, codigo})
	return nil
}

func novoUC() (*signup.SignupUseCase, *usuarioRepoFake, *mailerFake) {
	repo := newUsuarioRepoFake()
	mailer := &mailerFake{}
	return signup.NewSignupUseCase(repo, mailer), repo, mailer
}

var pedidoValido = dto.SignupRequest{
	Nome:     "Ana Maria",
	Email:    "a@b.com",
	Telefone: "11999999999",
	Senha:    "Abc123!@",
}

func TestCadastrar_CriaUsuarioNaoVerificado(t *testing.T) {
	uc, repo, mailer := novoUC()
	antes := time.Now()

	out, err := uc.Cadastrar(context.Background(), pedidoValido)
	require.NoError(t, err)

	assert.Equal(t, "pending_verification", out.Status)
	assert.Contains(t, out.Message, "a@b.com")
	assert.NotEmpty(t, out.UserID)
	assert.NotContains(t, out.Message, mailer.enviados[0].codigo,
		"a resposta não pode conter o código")

	u, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.False(t, u.Verificado)
	require.NotNil(t, u.CodigoVerificacao)
	assert.Len(t, *u.CodigoVerificacao, 6)
	require.NotNil(t, u.CodigoExpiracao, "todo código tem expiração associada")
	assert.WithinDuration(t, antes.Add(signup.ValidadeCodigo), *u.CodigoExpiracao, 5*time.Second,
		"a expiração deve ser criação + 24h")
	assert.NotEqual(t, pedidoValido.Senha, u.HashedPassword, "a senha nunca é persistida em claro")

	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, "a@b.com", mailer.enviados[0].email)
	assert.Equal(t, *u.CodigoVerificacao, mailer.enviados[0].codigo)
}

func TestCadastrar_EntradaInvalida_NadaPersistido(t *testing.T) {
	uc, repo, _ := novoUC()

	casos := []dto.SignupRequest{
		{Nome: "Ana Maria", Email: "email-invalido", Telefone: "11999999999", Senha: "Abc123!@"},
		{Nome: "ab", Email: "a@b.com", Telefone: "11999999999", Senha: "Abc123!@"},
		{Nome: "Ana Maria", Email: "a@b.com", Telefone: "123", Senha: "Abc123!@"},
		{Nome: "Ana Maria", Email: "a@b.com", Telefone: "11999999999", Senha: "fraca"},
	}
	for _, in := range casos {
		_, err := uc.Cadastrar(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "entrada: %+v", in)
	}

	u, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, u, "rejeição de formato acontece antes de qualquer escrita")
}

func TestCadastrar_EmailDuplicado_Conflito(t *testing.T) {
	uc, _, _ := novoUC()

	_, err := uc.Cadastrar(context.Background(), pedidoValido)
	require.NoError(t, err)

	_, err = uc.Cadastrar(context.Background(), pedidoValido)
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestVerificarCodigo_TransicaoUnica(t *testing.T) {
	uc, repo, mailer := novoUC()
	_, err := uc.Cadastrar(context.Background(), pedidoValido)
	require.NoError(t, err)
	codigo := mailer.enviados[0].codigo

	out, err := uc.VerificarCodigo(context.Background(), dto.VerificacaoRequest{
		Email: "a@b.com", Codigo: codigo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Verificação concluída com sucesso", out.Message)

	u, _ := repo.GetByEmail(context.Background(), "a@b.com")
	assert.True(t, u.Verificado)
	assert.Nil(t, u.CodigoVerificacao, "código limpo na transição")
	assert.Nil(t, u.CodigoExpiracao, "expiração limpa na transição")

	// Replay após verificado: sucesso idempotente, sem mudança de estado.
	out, err = uc.VerificarCodigo(context.Background(), dto.VerificacaoRequest{
		Email: "a@b.com", Codigo: codigo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Usuário já verificado", out.Message)
}

func TestVerificarCodigo_UsuarioInexistente(t *testing.T) {
	uc, _, _ := novoUC()
	_, err := uc.VerificarCodigo(context.Background(), dto.VerificacaoRequest{
		Email: "nao-existe@b.com", Codigo: "123456",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestVerificarCodigo_CodigoErrado_EstadoIntacto(t *testing.T) {
	uc, repo, mailer := novoUC()
	_, err := uc.Cadastrar(context.Background(), pedidoValido)
	require.NoError(t, err)
	codigo := mailer.enviados[0].codigo

	errado := "000000"
	if errado == codigo {
		errado = "000001"
	}
	_, err = uc.VerificarCodigo(context.Background(), dto.VerificacaoRequest{
		Email: "a@b.com", Codigo: errado,
	})
	assert.ErrorIs(t, err, domain.ErrCodigoInvalido)

	u, _ := repo.GetByEmail(context.Background(), "a@b.com")
	assert.False(t, u.Verificado)
	require.NotNil(t, u.CodigoVerificacao)
	assert.Equal(t, codigo, *u.CodigoVerificacao, "código e expiração permanecem inalterados")
	assert.NotNil(t, u.CodigoExpiracao)
}

func TestVerificarCodigo_Expirado(t *testing.T) {
	uc, repo, mailer := novoUC()
	_, err := uc.Cadastrar(context.Background(), pedidoValido)
	require.NoError(t, err)
	codigo := mailer.enviados[0].codigo

	// Move a expiração para o passado direto no repositório.
	passado := time.Now().Add(-time.Minute)
	repo.porEmail["a@b.com"].CodigoExpiracao = &passado

	_, err = uc.VerificarCodigo(context.Background(), dto.VerificacaoRequest{
		Email: "a@b.com", Codigo: codigo,
	})
	assert.ErrorIs(t, err, domain.ErrCodigoExpirado)

	u, _ := repo.GetByEmail(context.Background(), "a@b.com")
	assert.False(t, u.Verificado, "código expirado deixa o usuário não verificado")
}
