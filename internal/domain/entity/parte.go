package entity

// PessoaFisica registro de pessoa física resolvível por CPF (11 dígitos, sem pontuação).
type PessoaFisica struct {
	ID   string
	Nome string
	CPF  string
}

// PessoaJuridica registro de pessoa jurídica resolvível por CNPJ (14 dígitos, sem pontuação).
type PessoaJuridica struct {
	ID           string
	CNPJ         string
	RazaoSocial  string
	NomeFantasia string
}
