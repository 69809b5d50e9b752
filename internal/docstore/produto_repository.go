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

type mongoProdutoRepository struct {
	collection *mongo.Collection
}

func NewProdutoRepository(db *mongo.Database) ProdutoRepository {
	return &mongoProdutoRepository{collection: db.Collection("produtos")}
}

func (r *mongoProdutoRepository) List(ctx context.Context) ([]Produto, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list produtos: %w", err)
	}

	produtos := []Produto{}
	if err := cursor.All(ctx, &produtos); err != nil {
		return nil, fmt.Errorf("failed to decode produtos: %w", err)
	}

	return produtos, nil
}

func (r *mongoProdutoRepository) Create(ctx context.Context, p *Produto) (*Produto, error) {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to insert produto: %w", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *mongoProdutoRepository) GetByID(ctx context.Context, id string) (*Produto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProdutoNotFound
	}

	var p Produto
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProdutoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get produto: %w", err)
	}

	return &p, nil
}

func (r *mongoProdutoRepository) Update(ctx context.Context, id string, p *Produto) (*Produto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProdutoNotFound
	}

	update := bson.M{"$set": bson.M{
		"nome":      p.Nome,
		"descricao": p.Descricao,
		"preco":     p.Preco,
		"categoria": p.Categoria,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Produto
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProdutoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update produto: %w", err)
	}

	return &updated, nil
}

func (r *mongoProdutoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProdutoNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete produto: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrProdutoNotFound
	}

	return nil
}
