package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/signup"
	"github.com/cadastra/cadastro-api/internal/domain"
)

// SignupHandler trata cadastro e redenção do código de verificação.
type SignupHandler struct {
	uc *signup.SignupUseCase
}

// NewSignupHandler constrói o handler de cadastro.
func NewSignupHandler(uc *signup.SignupUseCase) *SignupHandler {
	return &SignupHandler{uc: uc}
}

// Signup godoc
// @Summary      Cadastrar usuário
// @Description  Cria o usuário não verificado e dispara o código de 6 dígitos
//               por email (validade de 24h). O código não aparece na resposta.
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "nome, email, telefone, senha"
// @Success      200   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /signup [post]
func (h *SignupHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Cadastrar(c.Context(), in)
	if err != nil {
		// Falhas de validação e de persistência viram respostas estruturadas;
		// nada é engolido no handler.
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: mensagemValidacao(err),
			})
		case errors.Is(err, domain.ErrEmailJaCadastrado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "EMAIL_EXISTS", Message: "Email já cadastrado",
			})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// VerificarCodigo godoc
// @Summary      Redimir código de verificação
// @Description  Transição única UNVERIFIED → VERIFIED. Replay sobre usuário já
//               verificado responde 200 sem mudança de estado. Limitado a
//               5 tentativas por minuto por endereço.
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerificacaoRequest  true  "email, codigo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /verificar-codigo [post]
func (h *SignupHandler) VerificarCodigo(c *fiber.Ctx) error {
	var in dto.VerificacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.VerificarCodigo(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "USER_NOT_FOUND", Message: "Usuário não encontrado",
			})
		case errors.Is(err, domain.ErrCodigoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_CODE", Message: "Código inválido",
			})
		case errors.Is(err, domain.ErrCodigoExpirado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "EXPIRED_CODE", Message: "Código expirado",
			})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// mensagemValidacao remove o prefixo do erro sentinela, deixando só o motivo.
func mensagemValidacao(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// internalError responde 500 sem vazar detalhes internos; o erro vai pro log.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "erro interno",
	})
}
