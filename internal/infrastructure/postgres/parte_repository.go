package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadastra/cadastro-api/internal/domain/entity"
	"github.com/cadastra/cadastro-api/internal/domain/repository"
)

var _ repository.ParteRepository = (*ParteRepo)(nil)

// ParteRepo consulta somente-leitura das tabelas pessoa_fisica e pessoa_juridica.
type ParteRepo struct {
	pool *pgxpool.Pool
}

// NewParteRepository constrói o adaptador de consulta de partes.
func NewParteRepository(pool *pgxpool.Pool) *ParteRepo {
	return &ParteRepo{pool: pool}
}

// GetPessoaFisicaByCPF busca pessoa física pelo CPF limpo (11 dígitos).
func (r *ParteRepo) GetPessoaFisicaByCPF(ctx context.Context, cpf string) (*entity.PessoaFisica, error) {
	var pf entity.PessoaFisica
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, cpf FROM pessoa_fisica WHERE cpf = $1`, cpf,
	).Scan(&pf.ID, &pf.Nome, &pf.CPF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa fisica: %w", err)
	}
	return &pf, nil
}

// GetPessoaJuridicaByCNPJ busca pessoa jurídica pelo CNPJ limpo (14 dígitos).
func (r *ParteRepo) GetPessoaJuridicaByCNPJ(ctx context.Context, cnpj string) (*entity.PessoaJuridica, error) {
	var pj entity.PessoaJuridica
	err := r.pool.QueryRow(ctx,
		`SELECT id, cnpj, razao_social, COALESCE(nome_fantasia, '')
		 FROM pessoa_juridica WHERE cnpj = $1`, cnpj,
	).Scan(&pj.ID, &pj.CNPJ, &pj.RazaoSocial, &pj.NomeFantasia)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa juridica: %w", err)
	}
	return &pj, nil
}
