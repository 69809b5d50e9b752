package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoVendaRepository struct {
	vendas   *mongo.Collection
	clientes *mongo.Collection
	produtos *mongo.Collection
}

func NewVendaRepository(db *mongo.Database) VendaRepository {
	return &mongoVendaRepository{
		vendas:   db.Collection("vendas"),
		clientes: db.Collection("clientes"),
		produtos: db.Collection("produtos"),
	}
}

// Create writes the sale and its embedded items as one document, which is
// atomic by construction. Embedded references are not validated; that
// mirrors the write side of populate's best-effort semantics.
func (r *mongoVendaRepository) Create(ctx context.Context, clienteID primitive.ObjectID, itens []ItemVenda) (*Venda, error) {
	var total float64
	for _, item := range itens {
		total += float64(item.Quantidade) * item.PrecoUnitario
	}

	venda := &Venda{Cliente: clienteID, Itens: itens, Total: total}
	res, err := r.vendas.InsertOne(ctx, venda)
	if err != nil {
		return nil, fmt.Errorf("failed to insert venda: %w", err)
	}

	venda.ID = res.InsertedID.(primitive.ObjectID)
	return venda, nil
}

func (r *mongoVendaRepository) List(ctx context.Context) ([]Venda, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.vendas.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendas: %w", err)
	}

	vendas := []Venda{}
	if err := cursor.All(ctx, &vendas); err != nil {
		return nil, fmt.Errorf("failed to decode vendas: %w", err)
	}

	return vendas, nil
}

// GetByID fetches the sale and expands its cliente and produto references
// inline. A reference that no longer resolves yields a null field.
func (r *mongoVendaRepository) GetByID(ctx context.Context, id string) (*VendaExpandida, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrVendaNotFound
	}

	var venda Venda
	err = r.vendas.FindOne(ctx, bson.M{"_id": oid}).Decode(&venda)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrVendaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venda: %w", err)
	}

	expanded := &VendaExpandida{
		ID:    venda.ID,
		Total: venda.Total,
		Itens: make([]ItemVendaExpandido, 0, len(venda.Itens)),
	}

	var cliente Cliente
	err = r.clientes.FindOne(ctx, bson.M{"_id": venda.Cliente}).Decode(&cliente)
	switch {
	case err == nil:
		expanded.Cliente = &cliente
	case errors.Is(err, mongo.ErrNoDocuments):
		// dangling reference, leave null
	default:
		return nil, fmt.Errorf("failed to expand cliente: %w", err)
	}

	produtos, err := r.findProdutos(ctx, venda.Itens)
	if err != nil {
		return nil, err
	}

	for _, item := range venda.Itens {
		out := ItemVendaExpandido{
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		}
		if p, ok := produtos[item.Produto]; ok {
			out.Produto = p
		}
		expanded.Itens = append(expanded.Itens, out)
	}

	return expanded, nil
}

// findProdutos resolves the distinct product references of a sale's items
// in one query.
func (r *mongoVendaRepository) findProdutos(ctx context.Context, itens []ItemVenda) (map[primitive.ObjectID]*Produto, error) {
	ids := make([]primitive.ObjectID, 0, len(itens))
	seen := make(map[primitive.ObjectID]bool, len(itens))
	for _, item := range itens {
		if !seen[item.Produto] {
			seen[item.Produto] = true
			ids = append(ids, item.Produto)
		}
	}

	byID := make(map[primitive.ObjectID]*Produto, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cursor, err := r.produtos.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to expand produtos: %w", err)
	}

	var produtos []Produto
	if err := cursor.All(ctx, &produtos); err != nil {
		return nil, fmt.Errorf("failed to decode produtos: %w", err)
	}

	for i := range produtos {
		byID[produtos[i].ID] = &produtos[i]
	}
	return byID, nil
}
