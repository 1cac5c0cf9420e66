package salonRepo

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

// ErrNotFound is returned when no salon matches the given id or slug.
var ErrNotFound = errors.New("salon not found")

// SalonRepository defines methods for salon data access.
type SalonRepository interface {
	// GetByID retrieves a salon by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	// GetBySlug retrieves a salon by its public booking-page slug.
	GetBySlug(ctx context.Context, slug string) (*models.Salon, error)
	// Create inserts a new salon record and returns its ID.
	Create(ctx context.Context, salon *models.Salon) (string, error)
	// Update modifies an existing salon record.
	Update(ctx context.Context, salon *models.Salon) error
	// UpdateSetDocument patches a salon document with the given fields.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// Delete removes a salon record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo returns a SalonRepository backed by MongoDB.
func NewMongoSalonRepo() SalonRepository {
	repo := &mongoSalonRepo{coll: database.DB().Collection("salons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create salon indexes: %v\n", err)
	}
	return repo
}

func (r *mongoSalonRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
