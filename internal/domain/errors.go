package domain

import "errors"

// Erros de domínio (sem dependências externas). Os handlers HTTP mapeiam
// cada um para o status correspondente; mensagens internas nunca vazam.
var (
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	// ErrCredenciaisInvalidas cobre tanto usuário inexistente quanto senha
	// incorreta: os dois casos são indistinguíveis para o chamador.
	ErrCredenciaisInvalidas = errors.New("email ou senha incorretos")
	ErrCodigoInvalido       = errors.New("código inválido")
	ErrCodigoExpirado       = errors.New("código expirado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrDocumentoInvalido    = errors.New("documento inválido")
)
