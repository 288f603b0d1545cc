package dto

// ParteSearchResponse resultado da consulta por documento.
// Name é nulo quando nenhuma parte corresponde ao CPF/CNPJ informado.
type ParteSearchResponse struct {
	Name *string `json:"name"`
}

// ParteExtractRequest texto livre do qual extrair os dados da parte.
type ParteExtractRequest struct {
	Texto string `json:"texto" validate:"required"`
}

// ParteExtractDTO dados estruturados extraídos do texto livre pelo LLM.
// Campos não identificados ficam vazios; Tipo é "fisica" ou "juridica".
type ParteExtractDTO struct {
	Tipo        string  `json:"tipo"`
	Nome        string  `json:"nome,omitempty"`
	RazaoSocial string  `json:"razao_social,omitempty"`
	CPF         string  `json:"cpf,omitempty"`
	CNPJ        string  `json:"cnpj,omitempty"`
	Email       string  `json:"email,omitempty"`
	Telefone    string  `json:"telefone,omitempty"`
	Confianca   float64 `json:"confianca"`
}
