package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Zefer1/desafio-db/internal/domain"
)

type postgresClienteRepository struct {
	db *sql.DB
}

func NewClienteRepository(db *sql.DB) ClienteRepository {
	return &postgresClienteRepository{db: db}
}

func (r *postgresClienteRepository) List(ctx context.Context) ([]domain.Cliente, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, email, telefone, morada FROM cliente ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query clientes: %w", err)
	}
	defer rows.Close()

	clientes := []domain.Cliente{}
	for rows.Next() {
		var c domain.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Morada); err != nil {
			return nil, fmt.Errorf("scan cliente row: %w", err)
		}
		clientes = append(clientes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return clientes, nil
}

func (r *postgresClienteRepository) Create(ctx context.Context, c domain.Cliente) (*domain.Cliente, error) {
	query := `INSERT INTO cliente (nome, email, telefone, morada)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, nome, email, telefone, morada`

	var created domain.Cliente
	err := r.db.QueryRowContext(ctx, query, c.Nome, c.Email, c.Telefone, c.Morada).
		Scan(&created.ID, &created.Nome, &created.Email, &created.Telefone, &created.Morada)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert cliente: %w", err)
	}

	return &created, nil
}

func (r *postgresClienteRepository) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	query := `SELECT id, nome, email, telefone, morada FROM cliente WHERE id = $1`

	var c domain.Cliente
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Morada)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query cliente by id: %w", err)
	}

	return &c, nil
}

// Update replaces all four mutable columns. A missing id is a not-found,
// never an insert.
func (r *postgresClienteRepository) Update(ctx context.Context, id int64, c domain.Cliente) (*domain.Cliente, error) {
	query := `UPDATE cliente
	          SET nome = $1, email = $2, telefone = $3, morada = $4
	          WHERE id = $5
	          RETURNING id, nome, email, telefone, morada`

	var updated domain.Cliente
	err := r.db.QueryRowContext(ctx, query, c.Nome, c.Email, c.Telefone, c.Morada, id).
		Scan(&updated.ID, &updated.Nome, &updated.Email, &updated.Telefone, &updated.Morada)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update cliente: %w", err)
	}

	return &updated, nil
}

func (r *postgresClienteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cliente rows affected: %w", err)
	}
	if affected == 0 {
		return ErrClienteNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is the Postgres unique-constraint
// error (23505), which on the cliente table can only be the email key.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
