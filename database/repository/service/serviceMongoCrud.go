package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a catalog entry by its unique ID.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.SalonService, error) {
	var svc models.SalonService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetBySalonID fetches a salon's service catalog.
func (r *mongoServiceRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.SalonService, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services for salon %s: %w", salonID, err)
	}
	return services, nil
}

// Create inserts a new catalog entry and returns its ID.
func (r *mongoServiceRepo) Create(ctx context.Context, svc *models.SalonService) (string, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return "", fmt.Errorf("failed to create service: %w", err)
	}
	return svc.ID, nil
}

// Update modifies an existing catalog entry.
func (r *mongoServiceRepo) Update(ctx context.Context, svc *models.SalonService) error {
	svc.UpdatedAt = time.Now()
	filter := bson.M{"id": svc.ID}
	update := bson.M{"$set": svc}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a catalog entry by its ID.
func (r *mongoServiceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
