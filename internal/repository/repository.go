package repository

import (
	"context"
	"errors"

	"github.com/Zefer1/desafio-db/internal/domain"
)

var (
	ErrClienteNotFound = errors.New("cliente not found")
	ErrProdutoNotFound = errors.New("produto not found")
	ErrVendaNotFound   = errors.New("venda not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

type ClienteRepository interface {
	List(ctx context.Context) ([]domain.Cliente, error)
	Create(ctx context.Context, c domain.Cliente) (*domain.Cliente, error)
	GetByID(ctx context.Context, id int64) (*domain.Cliente, error)
	Update(ctx context.Context, id int64, c domain.Cliente) (*domain.Cliente, error)
	Delete(ctx context.Context, id int64) error
}

type ProdutoRepository interface {
	List(ctx context.Context) ([]domain.Produto, error)
	Create(ctx context.Context, p domain.Produto) (*domain.Produto, error)
	GetByID(ctx context.Context, id int64) (*domain.Produto, error)
	Update(ctx context.Context, id int64, p domain.Produto) (*domain.Produto, error)
	Delete(ctx context.Context, id int64) error
}

// VendaRepository is the relational sale store. Create is the one
// multi-statement operation: the sale row and all its line items commit
// together or not at all.
type VendaRepository interface {
	Create(ctx context.Context, clienteID int64, itens []domain.ItemVenda) (*domain.Venda, error)
	List(ctx context.Context) ([]domain.Venda, error)
	GetByID(ctx context.Context, id int64) (*domain.Venda, error)
}
