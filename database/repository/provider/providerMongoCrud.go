package providerRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a provider by its unique ID.
func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

// GetBySalonID fetches all providers listed under a salon.
func (r *mongoProviderRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers for salon %s: %w", salonID, err)
	}
	return providers, nil
}

// Create inserts a new provider document and returns its ID.
func (r *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) (string, error) {
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return "", fmt.Errorf("failed to create provider: %w", err)
	}
	return provider.ID, nil
}

// Update modifies an existing provider document.
func (r *mongoProviderRepo) Update(ctx context.Context, provider *models.Provider) error {
	provider.UpdatedAt = time.Now()
	filter := bson.M{"id": provider.ID}
	update := bson.M{"$set": provider}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", provider.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a provider document by its ID.
func (r *mongoProviderRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
