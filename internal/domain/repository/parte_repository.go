package repository

import (
	"context"

	"github.com/cadastra/cadastro-api/internal/domain/entity"
)

// ParteRepository consulta somente-leitura de partes por documento fiscal.
type ParteRepository interface {
	GetPessoaFisicaByCPF(ctx context.Context, cpf string) (*entity.PessoaFisica, error)
	GetPessoaJuridicaByCNPJ(ctx context.Context, cnpj string) (*entity.PessoaJuridica, error)
}
