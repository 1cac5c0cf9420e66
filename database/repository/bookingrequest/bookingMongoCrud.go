package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking request and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, req *models.BookingRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create booking request: %w", err)
	}
	return req.ID, nil
}

// GetByID retrieves a booking request by its unique ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	var req models.BookingRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetBySalonID fetches a salon's booking requests, newest first.
func (r *mongoBookingRepo) GetBySalonID(ctx context.Context, salonID, status string) ([]models.BookingRequest, error) {
	filter := bson.M{"salonId": salonID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking requests for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var requests []models.BookingRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode booking requests for salon %s: %w", salonID, err)
	}
	return requests, nil
}

// UpdateStatus transitions a booking request to a new status.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of booking request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
