package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadastra/cadastro-api/internal/domain"
	"github.com/cadastra/cadastro-api/internal/domain/entity"
	"github.com/cadastra/cadastro-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioColunas = `id, nome, email, hashed_password, celular, verificado,
		codigo_verificacao, codigo_expiracao, created_at, deleted_at`

// Create persiste um novo usuário. Violações das constraints únicas de email
// e celular chegam como ErrEmailJaCadastrado, inclusive na corrida entre dois
// cadastros concorrentes com o mesmo email.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, hashed_password, celular, verificado,
			codigo_verificacao, codigo_expiracao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Nome, u.Email, u.HashedPassword, u.Celular, u.Verificado,
		u.CodigoVerificacao, u.CodigoExpiracao, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByEmail obtém um usuário por email. Devolve (nil, nil) se não existir.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioColunas + `
		FROM usuarios WHERE email = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, email)
}

// GetByID obtém um usuário por ID. Devolve (nil, nil) se não existir.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioColunas + `
		FROM usuarios WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, id)
}

// MarcarVerificado marca o usuário como verificado e limpa código e expiração
// em um único UPDATE condicionado a verificado = false. Duas redenções
// concorrentes não perdem atualização: a segunda afeta zero linhas e devolve
// false, que o caso de uso trata como replay idempotente.
func (r *UsuarioRepo) MarcarVerificado(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE usuarios
		SET verificado = true, codigo_verificacao = NULL, codigo_expiracao = NULL
		WHERE id = $1 AND verificado = false AND deleted_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("marcar verificado: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.HashedPassword, &u.Celular, &u.Verificado,
		&u.CodigoVerificacao, &u.CodigoExpiracao, &u.CreatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
