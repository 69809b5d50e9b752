package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrClienteNotFound = errors.New("cliente document not found")
	ErrProdutoNotFound = errors.New("produto document not found")
	ErrVendaNotFound   = errors.New("venda document not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

type ClienteRepository interface {
	List(ctx context.Context) ([]Cliente, error)
	Create(ctx context.Context, c *Cliente) (*Cliente, error)
	GetByID(ctx context.Context, id string) (*Cliente, error)
	Update(ctx context.Context, id string, c *Cliente) (*Cliente, error)
	Delete(ctx context.Context, id string) error
}

type ProdutoRepository interface {
	List(ctx context.Context) ([]Produto, error)
	Create(ctx context.Context, p *Produto) (*Produto, error)
	GetByID(ctx context.Context, id string) (*Produto, error)
	Update(ctx context.Context, id string, p *Produto) (*Produto, error)
	Delete(ctx context.Context, id string) error
}

type VendaRepository interface {
	Create(ctx context.Context, clienteID primitive.ObjectID, itens []ItemVenda) (*Venda, error)
	List(ctx context.Context) ([]Venda, error)
	GetByID(ctx context.Context, id string) (*VendaExpandida, error)
}
