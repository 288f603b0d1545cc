package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/party"
	"github.com/cadastra/cadastro-api/internal/domain"
)

// ParteHandler trata a consulta de partes por documento e a extração via IA.
type ParteHandler struct {
	uc *party.ParteUseCase
}

// NewParteHandler constrói o handler de partes.
func NewParteHandler(uc *party.ParteUseCase) *ParteHandler {
	return &ParteHandler{uc: uc}
}

// Buscar godoc
// @Summary      Consultar parte por CPF ou CNPJ
// @Description  Resolve o nome da pessoa física (CPF) ou a razão social da
//               pessoa jurídica (CNPJ). Requer o header X-API-Key.
// @Tags         party
// @Produce      json
// @Param        document  query   string  true  "CPF ou CNPJ"
// @Param        X-API-Key header  string  true  "Chave de API interna"
// @Success      200  {object}  dto.ParteSearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/party [get]
func (h *ParteHandler) Buscar(c *fiber.Ctx) error {
	documento := c.Query("document")
	out, err := h.uc.BuscarPorDocumento(c.Context(), documento)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentoInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_DOCUMENT", Message: "Documento inválido",
			})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Extrair godoc
// @Summary      Extrair dados de parte de texto livre com IA
// @Description  Envia a qualificação em texto livre ao LLM e devolve os campos
//               estruturados (tipo, nome/razão social, documentos, contato).
//               Requer o header X-API-Key. Timeout interno de 10 s.
// @Tags         party
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParteExtractRequest  true  "texto"
// @Success      200   {object}  dto.ParteExtractDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/party/extract [post]
func (h *ParteHandler) Extrair(c *fiber.Ctx) error {
	var req dto.ParteExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "corpo da requisição inválido",
		})
	}

	result, err := h.uc.Extrair(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: mensagemValidacao(err),
			})
		case isTimeout(err):
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "o serviço de IA demorou demais; tente de novo",
			})
		case strings.Contains(err.Error(), "ANTHROPIC_API_KEY"):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "o serviço de extração IA não está configurado",
			})
		}
		return internalError(c, err)
	}

	return c.JSON(result)
}

// isTimeout detecta erros de timeout/cancelamento de contexto na mensagem.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelamento")
}
