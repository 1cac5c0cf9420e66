package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonflow/database"
	"salonflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no catalog entry matches the given id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a catalog entry by its unique ID.
	GetByID(ctx context.Context, id string) (*models.SalonService, error)
	// GetBySalonID retrieves a salon's service catalog.
	GetBySalonID(ctx context.Context, salonID string) ([]models.SalonService, error)
	// Create inserts a new catalog entry and returns its ID.
	Create(ctx context.Context, svc *models.SalonService) (string, error)
	// Update modifies an existing catalog entry.
	Update(ctx context.Context, svc *models.SalonService) error
	// Delete removes a catalog entry by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	repo := &mongoServiceRepo{coll: database.DB().Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func (r *mongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salonId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
