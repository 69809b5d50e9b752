package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zefer1/desafio-db/internal/domain"
)

type postgresProdutoRepository struct {
	db *sql.DB
}

func NewProdutoRepository(db *sql.DB) ProdutoRepository {
	return &postgresProdutoRepository{db: db}
}

func (r *postgresProdutoRepository) List(ctx context.Context) ([]domain.Produto, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nome, descricao, preco, categoria FROM produto ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query produtos: %w", err)
	}
	defer rows.Close()

	produtos := []domain.Produto{}
	for rows.Next() {
		var p domain.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Categoria); err != nil {
			return nil, fmt.Errorf("scan produto row: %w", err)
		}
		produtos = append(produtos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return produtos, nil
}

func (r *postgresProdutoRepository) Create(ctx context.Context, p domain.Produto) (*domain.Produto, error) {
	query := `INSERT INTO produto (nome, descricao, preco, categoria)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, nome, descricao, preco, categoria`

	var created domain.Produto
	err := r.db.QueryRowContext(ctx, query, p.Nome, p.Descricao, p.Preco, p.Categoria).
		Scan(&created.ID, &created.Nome, &created.Descricao, &created.Preco, &created.Categoria)
	if err != nil {
		return nil, fmt.Errorf("insert produto: %w", err)
	}

	return &created, nil
}

func (r *postgresProdutoRepository) GetByID(ctx context.Context, id int64) (*domain.Produto, error) {
	query := `SELECT id, nome, descricao, preco, categoria FROM produto WHERE id = $1`

	var p domain.Produto
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Categoria)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProdutoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query produto by id: %w", err)
	}

	return &p, nil
}

func (r *postgresProdutoRepository) Update(ctx context.Context, id int64, p domain.Produto) (*domain.Produto, error) {
	query := `UPDATE produto
	          SET nome = $1, descricao = $2, preco = $3, categoria = $4
	          WHERE id = $5
	          RETURNING id, nome, descricao, preco, categoria`

	var updated domain.Produto
	err := r.db.QueryRowContext(ctx, query, p.Nome, p.Descricao, p.Preco, p.Categoria, id).
		Scan(&updated.ID, &updated.Nome, &updated.Descricao, &updated.Preco, &updated.Categoria)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProdutoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update produto: %w", err)
	}

	return &updated, nil
}

func (r *postgresProdutoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete produto rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProdutoNotFound
	}

	return nil
}
