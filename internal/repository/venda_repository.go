package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zefer1/desafio-db/internal/domain"
)

type postgresVendaRepository struct {
	db *sql.DB
}

func NewVendaRepository(db *sql.DB) VendaRepository {
	return &postgresVendaRepository{db: db}
}

// Create inserts the sale header and all its line items in one transaction.
// The total is computed from the caller-supplied unit prices; the product
// catalog is never consulted. Any failure rolls the whole sale back.
func (r *postgresVendaRepository) Create(ctx context.Context, clienteID int64, itens []domain.ItemVenda) (*domain.Venda, error) {
	total := domain.ComputeTotal(itens)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin venda transaction: %w", err)
	}

	venda := &domain.Venda{ClienteID: clienteID, Total: total, Itens: itens}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO venda (cliente_id, total) VALUES ($1, $2) RETURNING id, data`,
		clienteID, total).
		Scan(&venda.ID, &venda.Data)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("insert venda: %w", err)
	}

	// All item inserts ride the transaction's connection; the driver
	// serializes them, so order between items is irrelevant.
	itemQuery := `INSERT INTO pedido (venda_id, produto_id, quantidade, preco_unitario)
	              VALUES ($1, $2, $3, $4)`
	for _, item := range itens {
		if _, err := tx.ExecContext(ctx, itemQuery,
			venda.ID, item.ProdutoID, item.Quantidade, item.PrecoUnitario); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("insert pedido: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit venda: %w", err)
	}

	return venda, nil
}

func (r *postgresVendaRepository) List(ctx context.Context) ([]domain.Venda, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, cliente_id, data, total FROM venda ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query vendas: %w", err)
	}
	defer rows.Close()

	vendas := []domain.Venda{}
	for rows.Next() {
		var v domain.Venda
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Data, &v.Total); err != nil {
			return nil, fmt.Errorf("scan venda row: %w", err)
		}
		vendas = append(vendas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return vendas, nil
}

// GetByID fetches the sale header and, only if it exists, its line items.
func (r *postgresVendaRepository) GetByID(ctx context.Context, id int64) (*domain.Venda, error) {
	var v domain.Venda
	err := r.db.QueryRowContext(ctx,
		`SELECT id, cliente_id, data, total FROM venda WHERE id = $1`, id).
		Scan(&v.ID, &v.ClienteID, &v.Data, &v.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVendaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query venda by id: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT produto_id, quantidade, preco_unitario FROM pedido WHERE venda_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("query pedidos: %w", err)
	}
	defer rows.Close()

	v.Itens = []domain.ItemVenda{}
	for rows.Next() {
		var item domain.ItemVenda
		if err := rows.Scan(&item.ProdutoID, &item.Quantidade, &item.PrecoUnitario); err != nil {
			return nil, fmt.Errorf("scan pedido row: %w", err)
		}
		v.Itens = append(v.Itens, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return &v, nil
}
