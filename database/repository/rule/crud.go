// File: database/repository/rule/crud.go
package ruleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

func (r *mongoRuleRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	rule.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, rule)
	return err
}

func (r *mongoRuleRepo) Update(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rule.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": rule.ID}, rule)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoRuleRepo) GetByID(ctx context.Context, id string) (*models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.AvailabilityRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoRuleRepo) ListByLocation(ctx context.Context, locationName string) ([]models.AvailabilityRule, error) {
	return r.list(ctx, bson.M{"locationName": locationName})
}

func (r *mongoRuleRepo) ListAll(ctx context.Context) ([]models.AvailabilityRule, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoRuleRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}
