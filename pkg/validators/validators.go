// Package validators concentra a validação e normalização de entrada do
// cadastro: email, telefone, nome, senha e documentos fiscais (CPF/CNPJ).
// Toda rejeição acontece antes de qualquer escrita na persistência.
package validators

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	naoDigitos = regexp.MustCompile(`\D`)

	senhaMaiuscula = regexp.MustCompile(`[A-Z]`)
	senhaMinuscula = regexp.MustCompile(`[a-z]`)
	senhaNumero    = regexp.MustCompile(`[0-9]`)
	senhaEspecial  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidarEmail verifica o formato do email.
func ValidarEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizarTelefone remove a formatação e valida telefone brasileiro
// (10 ou 11 dígitos, incluindo DDD). Devolve apenas os dígitos.
func NormalizarTelefone(telefone string) (string, error) {
	digitos := naoDigitos.ReplaceAllString(telefone, "")
	if len(digitos) < 10 || len(digitos) > 11 {
		return "", errors.New("telefone deve ter 10 ou 11 dígitos (incluindo DDD)")
	}
	return digitos, nil
}

// NormalizarNome valida o tamanho (3–100 após trim) e capitaliza o nome.
func NormalizarNome(nome string) (string, error) {
	nome = strings.TrimSpace(nome)
	if len(nome) < 3 {
		return "", errors.New("nome deve ter pelo menos 3 caracteres")
	}
	if len(nome) > 100 {
		return "", errors.New("nome deve ter no máximo 100 caracteres")
	}
	// Um cases.Caser não é seguro para uso concorrente; criar por chamada.
	return cases.Title(language.BrazilianPortuguese).String(strings.ToLower(nome)), nil
}

// ValidarSenha aplica a política de senha: mínimo 6 caracteres, ao menos uma
// maiúscula, uma minúscula, um número e um caractere especial.
func ValidarSenha(senha string) error {
	switch {
	case len(senha) < 6:
		return errors.New("senha deve ter no mínimo 6 caracteres")
	case !senhaMaiuscula.MatchString(senha):
		return errors.New("senha deve conter pelo menos uma letra maiúscula")
	case !senhaMinuscula.MatchString(senha):
		return errors.New("senha deve conter pelo menos uma letra minúscula")
	case !senhaNumero.MatchString(senha):
		return errors.New("senha deve conter pelo menos um número")
	case !senhaEspecial.MatchString(senha):
		return errors.New("senha deve conter pelo menos um caractere especial")
	}
	return nil
}

// LimparDocumento remove tudo que não for dígito de um CPF/CNPJ formatado.
func LimparDocumento(documento string) string {
	return naoDigitos.ReplaceAllString(documento, "")
}

// IsCPF informa se o documento (já limpo) tem o comprimento de um CPF.
func IsCPF(documento string) bool {
	return len(documento) == 11
}

// IsCNPJ informa se o documento (já limpo) tem o comprimento de um CNPJ.
func IsCNPJ(documento string) bool {
	return len(documento) == 14
}
