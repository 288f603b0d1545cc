package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/cadastra/cadastro-api/internal/application/auth"
	"github.com/cadastra/cadastro-api/internal/application/dto"
	"github.com/cadastra/cadastro-api/internal/application/party"
	"github.com/cadastra/cadastro-api/internal/application/signup"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SignupUC       *signup.SignupUseCase
	AuthUC         *auth.AuthUseCase
	ParteUC        *party.ParteUseCase
	JWTSecret      string
	InternalAPIKey string
	CORSOrigins    string // vazio = padrão do frontend local
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	origins := deps.CORSOrigins
	if origins == "" {
		// Frontend React em desenvolvimento
		origins = "http://localhost:5173, http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		ExposeHeaders:    "*",
	}))

	// Cadastro e verificação (público)
	signupHandler := NewSignupHandler(deps.SignupUC)
	app.Post("/signup", signupHandler.Signup)
	// Janela deslizante de 5 tentativas/minuto por IP na redenção do código.
	app.Post("/verificar-codigo", verificacaoLimiter(), signupHandler.VerificarCodigo)

	// Auth (público + rota protegida de exemplo)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Get("/protegido", AuthMiddleware(deps.JWTSecret), authHandler.Protegido)

	// Party lookup (interno, protegido por X-API-Key)
	api := app.Group("/api", APIKeyMiddleware(deps.InternalAPIKey))
	parteHandler := NewParteHandler(deps.ParteUC)
	api.Get("/party", parteHandler.Buscar)
	api.Post("/party/extract", parteHandler.Extrair)
}

// verificacaoLimiter limita a redenção de códigos: 5/min por IP, janela deslizante.
func verificacaoLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               5,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "Muitas tentativas. Aguarde um momento antes de tentar novamente.",
			})
		},
	})
}
