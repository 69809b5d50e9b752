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

type mongoClienteRepository struct {
	collection *mongo.Collection
}

func NewClienteRepository(db *mongo.Database) ClienteRepository {
	return &mongoClienteRepository{collection: db.Collection("clientes")}
}

func (r *mongoClienteRepository) List(ctx context.Context) ([]Cliente, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}

	clientes := []Cliente{}
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("failed to decode clientes: %w", err)
	}

	return clientes, nil
}

func (r *mongoClienteRepository) Create(ctx context.Context, c *Cliente) (*Cliente, error) {
	res, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert cliente: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (r *mongoClienteRepository) GetByID(ctx context.Context, id string) (*Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrClienteNotFound
	}

	var c Cliente
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}

	return &c, nil
}

func (r *mongoClienteRepository) Update(ctx context.Context, id string, c *Cliente) (*Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrClienteNotFound
	}

	update := bson.M{"$set": bson.M{
		"nome":     c.Nome,
		"email":    c.Email,
		"telefone": c.Telefone,
		"morada":   c.Morada,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Cliente
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update cliente: %w", err)
	}

	return &updated, nil
}

func (r *mongoClienteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrClienteNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrClienteNotFound
	}

	return nil
}
