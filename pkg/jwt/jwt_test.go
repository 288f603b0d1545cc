package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/cadastra/cadastro-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "cadastro-api-test"
	testEmail  = "a@b.com"
	testExpMin = 30
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email, "o subject decodificado deve ser o email")
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalido, "token expirado deve retornar erro uniforme")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalido, "secret incorreto deve invalidar o token")
}

func TestJWT_TokenMalformado_RetornaErro(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalido)
}

func TestJWT_SubjectAusente_RetornaErro(t *testing.T) {
	// Subject vazio deve ser rejeitado na validação, não na geração.
	tok, err := pkgjwt.Generate(testSecret, "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalido, "token sem subject deve retornar o mesmo erro uniforme")
}

func TestJWT_SecretVazio_RetornaErro(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testIssuer, testExpMin)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "qualquer")
	assert.Error(t, err)
}
