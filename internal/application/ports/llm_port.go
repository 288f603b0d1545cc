package ports

import (
	"context"

	"github.com/cadastra/cadastro-api/internal/application/dto"
)

// LLMService define o porto de saída para o serviço de extração assistida por
// IA. Qualquer adaptador (Anthropic, Gemini, mock) deve implementar esta
// interface; a aplicação só conhece este contrato, não a implementação.
type LLMService interface {
	// ExtractParte analisa um texto livre (ex.: qualificação de uma parte em
	// um documento) e devolve os dados estruturados identificados.
	// O contexto deve levar um timeout para evitar bloqueios em chamadas externas.
	ExtractParte(ctx context.Context, texto string) (*dto.ParteExtractDTO, error)
}
