// File: database/repository/rule/interface.go
package ruleRepo

import (
	"context"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRuleRepository persists the schedule rules administrators
// configure per location.
type AvailabilityRuleRepository interface {
	Create(ctx context.Context, rule *models.AvailabilityRule) error
	Update(ctx context.Context, rule *models.AvailabilityRule) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.AvailabilityRule, error)
	ListByLocation(ctx context.Context, locationName string) ([]models.AvailabilityRule, error)
	ListAll(ctx context.Context) ([]models.AvailabilityRule, error)
	EnsureIndexes() error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new MongoDB AvailabilityRuleRepository.
func NewMongoRuleRepo() AvailabilityRuleRepository {
	db := database.MongoClient.Database("clinicbook")
	return &mongoRuleRepo{
		coll: db.Collection("availability_rules"),
	}
}
