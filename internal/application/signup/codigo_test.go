package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/cadastro-api/internal/application/signup"
)

func TestGerarCodigoVerificacao_TamanhoEDigitos(t *testing.T) {
	for i := 0; i < 50; i++ {
		codigo, err := signup.GerarCodigoVerificacao(signup.TamanhoCodigo)
		require.NoError(t, err)
		require.Len(t, codigo, 6)
		for _, r := range codigo {
			assert.True(t, r >= '0' && r <= '9', "código deve conter apenas dígitos: %q", codigo)
		}
	}
}

func TestGerarCodigoVerificacao_NaoRepeteSempre(t *testing.T) {
	// Com fonte criptográfica, 20 códigos de 6 dígitos não podem ser todos iguais.
	vistos := map[string]bool{}
	for i := 0; i < 20; i++ {
		codigo, err := signup.GerarCodigoVerificacao(signup.TamanhoCodigo)
		require.NoError(t, err)
		vistos[codigo] = true
	}
	assert.Greater(t, len(vistos), 1, "os códigos gerados não devem ser todos idênticos")
}
