package signup

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// TamanhoCodigo comprimento padrão do código de verificação.
const TamanhoCodigo = 6

var dez = big.NewInt(10)

// GerarCodigoVerificacao produz um código numérico de tamanho fixo usando
// fonte criptográfica. O código é o único segredo que libera a ativação da
// conta, então precisa resistir a adivinhação dentro da janela de validade.
func GerarCodigoVerificacao(tamanho int) (string, error) {
	b := make([]byte, tamanho)
	for i := range b {
		n, err := rand.Int(rand.Reader, dez)
		if err != nil {
			return "", fmt.Errorf("gerar código: %w", err)
		}
		b[i] = byte('0' + n.Int64())
	}
	return string(b), nil
}
