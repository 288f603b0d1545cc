package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/cadastro-api/internal/application/auth"
	"github.com/cadastra/cadastro-api/internal/application/party"
	"github.com/cadastra/cadastro-api/internal/application/signup"
	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/entity"
	apphttp "github.com/cadastra/cadastro-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "cadastro-api-test"
	testExpMin    = 30
	testAPIKey    = "chave-interna-de-teste"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

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

type parteRepoFake struct {
	fisicas   map[string]*entity.PessoaFisica
	juridicas map[string]*entity.PessoaJuridica
}

func newParteRepoFake() *parteRepoFake {
	return &parteRepoFake{
		fisicas:   map[string]*entity.PessoaFisica{},
		juridicas: map[string]*entity.PessoaJuridica{},
	}
}

func (f *parteRepoFake) GetPessoaFisicaByCPF(_ context.Context, cpf string) (*entity.PessoaFisica, error) {
	return f.fisicas[cpf], nil
}

func (f *parteRepoFake) GetPessoaJuridicaByCNPJ(_ context.Context, cnpj string) (*entity.PessoaJuridica, error) {
	return f.juridicas[cnpj], nil
}

type mailerFake struct {
	enviados []struct{ email, codigo string }
}

func (m *mailerFake) EnviarCodigoVerificacao(_ context.Context, email, codigo string) error {
	m.enviados = append(m.enviados, struct{ email, codigo string }{email, codigo})
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Construção da aplicação de teste
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app    *fiber.App
	repo   *usuarioRepoFake
	partes *parteRepoFake
	mailer *mailerFake
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	repo := newUsuarioRepoFake()
	partes := newParteRepoFake()
	mailer := &mailerFake{}

	signupUC := signup.NewSignupUseCase(repo, mailer)
	authUC := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	parteUC := party.NewParteUseCase(partes, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SignupUC:       signupUC,
		AuthUC:         authUC,
		ParteUC:        parteUC,
		JWTSecret:      testJWTSecret,
		InternalAPIKey: testAPIKey,
	})
	return &testEnv{app: app, repo: repo, partes: partes, mailer: mailer}
}

// postJSON lança um POST com corpo JSON e devolve a resposta.
func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode desserializa o corpo da resposta em m.
func decode(t *testing.T, resp *http.Response, m any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(m))
}
