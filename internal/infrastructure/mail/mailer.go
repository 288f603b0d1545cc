// Package mail implementa o porto Mailer: um remetente SMTP real via gomail e
// um stub que apenas registra o envio, usado quando SMTP_HOST está vazio.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/cadastra/cadastro-api/internal/application/ports"
	"github.com/cadastra/cadastro-api/pkg/config"
	"github.com/cadastra/cadastro-api/pkg/logger"
)

var _ ports.Mailer = (*SMTPMailer)(nil)
var _ ports.Mailer = (*LogMailer)(nil)

// SMTPMailer envia o código de verificação por SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constrói o remetente com a configuração SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// EnviarCodigoVerificacao monta e envia o email com o código.
func (m *SMTPMailer) EnviarCodigoVerificacao(_ context.Context, email, codigo string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Código de verificação")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Seu código de verificação é %s. Ele expira em 24 horas.", codigo))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar email de verificação: %w", err)
	}
	return nil
}

// LogMailer stub de desenvolvimento: não envia nada, só registra no log.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer constrói o stub.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// EnviarCodigoVerificacao registra o código que seria enviado.
func (m *LogMailer) EnviarCodigoVerificacao(_ context.Context, email, codigo string) error {
	m.log.Info().Str("email", email).Str("codigo", codigo).Msg("envio de email stub: código de verificação")
	return nil
}
