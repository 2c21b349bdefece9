// File: database/repository/block/crud.go
package blockRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.BlockRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, block)
	return err
}

func (r *mongoBlockRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockRepo) GetByID(ctx context.Context, id string) (*models.BlockRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.BlockRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *mongoBlockRepo) ListByLocation(ctx context.Context, locationName string) ([]models.BlockRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"locationName": locationName})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockRule
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
