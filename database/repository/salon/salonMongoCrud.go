package salonRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a salon by its unique ID.
func (r *mongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch salon with id %s: %w", id, err)
	}
	return &salon, nil
}

// GetBySlug retrieves a salon by its public slug.
func (r *mongoSalonRepo) GetBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&salon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch salon with slug %s: %w", slug, err)
	}
	return &salon, nil
}

// Create inserts a new salon document and returns its ID.
func (r *mongoSalonRepo) Create(ctx context.Context, salon *models.Salon) (string, error) {
	if salon.ID == "" {
		salon.ID = uuid.New().String()
	}
	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, salon); err != nil {
		return "", fmt.Errorf("failed to create salon: %w", err)
	}
	return salon.ID, nil
}

// Update modifies an existing salon document.
func (r *mongoSalonRepo) Update(ctx context.Context, salon *models.Salon) error {
	salon.UpdatedAt = time.Now()
	filter := bson.M{"id": salon.ID}
	update := bson.M{"$set": salon}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", salon.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSetDocument patches a salon document with the specified fields.
func (r *mongoSalonRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error {
	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a salon document by its ID.
func (r *mongoSalonRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete salon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
