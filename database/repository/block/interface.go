// File: database/repository/block/interface.go
package blockRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockRuleRepository persists the blocking overrides administrators place
// on top of the configured schedule.
type BlockRuleRepository interface {
	Create(ctx context.Context, block *models.BlockRule) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.BlockRule, error)
	ListByLocation(ctx context.Context, locationName string) ([]models.BlockRule, error)
	EnsureIndexes() error
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRuleRepository.
func NewMongoBlockRepo() BlockRuleRepository {
	db := database.MongoClient.Database("clinicbook")
	return &mongoBlockRepo{
		coll: db.Collection("block_rules"),
	}
}
