package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cadastra/cadastro-api/internal/application/auth"
	"github.com/cadastra/cadastro-api/internal/application/party"
	"github.com/cadastra/cadastro-api/internal/application/ports"
	"github.com/cadastra/cadastro-api/internal/application/signup"
	infraai "github.com/cadastra/cadastro-api/internal/infrastructure/ai"
	inframail "github.com/cadastra/cadastro-api/internal/infrastructure/mail"
	"github.com/cadastra/cadastro-api/internal/infrastructure/postgres"
	httpRouter "github.com/cadastra/cadastro-api/internal/interfaces/http"
	"github.com/cadastra/cadastro-api/pkg/config"
	"github.com/cadastra/cadastro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	parteRepo := postgres.NewParteRepository(pool)

	// Mailer real só com SMTP configurado; sem ele, stub que loga o código.
	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer = inframail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP_HOST vazio: envio de email em modo stub")
		mailer = inframail.NewLogMailer(log)
	}

	signupUC := signup.NewSignupUseCase(usuarioRepo, mailer)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	parteUC := party.NewParteUseCase(parteRepo, anthropicSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cadastro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SignupUC:       signupUC,
		AuthUC:         authUC,
		ParteUC:        parteUC,
		JWTSecret:      cfg.JWT.Secret,
		InternalAPIKey: cfg.API.InternalKey,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
