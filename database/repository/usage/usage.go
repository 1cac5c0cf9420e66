package usageRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsageRecordRepository defines methods for billable usage data access.
type UsageRecordRepository interface {
	// Create inserts a new usage record and returns its ID.
	Create(ctx context.Context, record *models.UsageRecord) (string, error)
	// GetBySalonID retrieves a salon's usage records, newest first.
	GetBySalonID(ctx context.Context, salonID string) ([]models.UsageRecord, error)
}

type mongoUsageRepo struct {
	coll *mongo.Collection
}

// NewMongoUsageRepo returns a UsageRecordRepository backed by MongoDB.
func NewMongoUsageRepo() UsageRecordRepository {
	repo := &mongoUsageRepo{coll: database.DB().Collection("usage_records")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create usage record indexes: %v\n", err)
	}
	return repo
}

func (r *mongoUsageRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
