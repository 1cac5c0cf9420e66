package usageRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new usage record and returns its ID.
func (r *mongoUsageRepo) Create(ctx context.Context, record *models.UsageRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Quantity == 0 {
		record.Quantity = 1
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("failed to create usage record: %w", err)
	}
	return record.ID, nil
}

// GetBySalonID fetches a salon's usage records, newest first.
func (r *mongoUsageRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.UsageRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usage records for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var records []models.UsageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode usage records for salon %s: %w", salonID, err)
	}
	return records, nil
}
