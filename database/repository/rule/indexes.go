// File: database/repository/rule/indexes.go
package ruleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability_rules collection.
func (r *mongoRuleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all rules for one location.
		{
			Keys:    bson.D{{Key: "locationName", Value: 1}},
			Options: options.Index().SetName("location_idx"),
		},
		{
			Keys:    bson.D{{Key: "locationName", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index().SetName("location_start_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability rule indexes: %w", err)
	}
	return nil
}
