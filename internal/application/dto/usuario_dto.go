package dto

// SignupRequest entrada do cadastro (senha em texto, é hasheada no use case).
type SignupRequest struct {
	Nome     string `json:"nome" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
	Senha    string `json:"senha" validate:"required,min=6"`
}

// SignupResponse confirmação do cadastro pendente de verificação.
// O código nunca é devolvido na resposta; vai apenas por email.
type SignupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// VerificacaoRequest entrada da redenção do código de verificação.
type VerificacaoRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Codigo string `json:"codigo" validate:"required"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída com o token de acesso.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
