package ports

import "context"

// Mailer define o porto de envio do código de verificação por email.
// A entrega real é um colaborador externo; em desenvolvimento usa-se um stub
// que apenas registra o envio no log.
type Mailer interface {
	EnviarCodigoVerificacao(ctx context.Context, email, codigo string) error
}
