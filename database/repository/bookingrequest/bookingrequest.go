package bookingRepo

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

// ErrNotFound is returned when no booking request matches the given id.
var ErrNotFound = errors.New("booking request not found")

// BookingRequestRepository defines methods for booking request data access.
type BookingRequestRepository interface {
	// Create inserts a new booking request and returns its ID.
	Create(ctx context.Context, req *models.BookingRequest) (string, error)
	// GetByID retrieves a booking request by its unique ID.
	GetByID(ctx context.Context, id string) (*models.BookingRequest, error)
	// GetBySalonID retrieves a salon's booking requests, newest first.
	// An empty status retrieves all of them.
	GetBySalonID(ctx context.Context, salonID, status string) ([]models.BookingRequest, error)
	// UpdateStatus transitions a booking request to a new status.
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRequestRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRequestRepository {
	repo := &mongoBookingRepo{coll: database.DB().Collection("booking_requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking request indexes: %v\n", err)
	}
	return repo
}

func (r *mongoBookingRepo) ensureIndexes() error {
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
