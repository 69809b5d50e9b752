package docstore

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document-side models. These are deliberately independent of the
// relational entities in internal/domain: the two stores are separate
// bounded contexts and are never synchronized.

type Cliente struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nome     string             `bson:"nome" json:"nome"`
	Email    string             `bson:"email" json:"email"`
	Telefone *string            `bson:"telefone,omitempty" json:"telefone,omitempty"`
	Morada   *string            `bson:"morada,omitempty" json:"morada,omitempty"`
}

type Produto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nome      string             `bson:"nome" json:"nome"`
	Descricao *string            `bson:"descricao,omitempty" json:"descricao,omitempty"`
	Preco     float64            `bson:"preco" json:"preco"`
	Categoria *string            `bson:"categoria,omitempty" json:"categoria,omitempty"`
}

// Venda embeds its line items in one document, so creating a sale is a
// single atomic write.
type Venda struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Cliente primitive.ObjectID `bson:"cliente" json:"cliente"`
	Itens   []ItemVenda        `bson:"itens" json:"itens"`
	Total   float64            `bson:"total" json:"total"`
}

type ItemVenda struct {
	Produto       primitive.ObjectID `bson:"produto" json:"produto"`
	Quantidade    int                `bson:"quantidade" json:"quantidade"`
	PrecoUnitario float64            `bson:"preco_unitario" json:"preco_unitario"`
}

// VendaExpandida is the read shape of GET /mongo/vendas/{id}: the stored
// references resolved inline. A dangling reference resolves to null, never
// to an error.
type VendaExpandida struct {
	ID      primitive.ObjectID   `json:"_id"`
	Cliente *Cliente             `json:"cliente"`
	Itens   []ItemVendaExpandido `json:"itens"`
	Total   float64              `json:"total"`
}

type ItemVendaExpandido struct {
	Produto       *Produto `json:"produto"`
	Quantidade    int      `json:"quantidade"`
	PrecoUnitario float64  `json:"preco_unitario"`
}
