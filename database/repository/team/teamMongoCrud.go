package teamRepo

import (
	"context"
	"fmt"
	"time"

	"salonflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a team member by its unique ID.
func (r *mongoTeamRepo) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch team member with id %s: %w", id, err)
	}
	return &member, nil
}

// GetBySalonID fetches all team members of a salon.
func (r *mongoTeamRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.TeamMember, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team members for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode team members for salon %s: %w", salonID, err)
	}
	return members, nil
}

// Create inserts a new team member document and returns its ID.
func (r *mongoTeamRepo) Create(ctx context.Context, member *models.TeamMember) (string, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return "", fmt.Errorf("failed to create team member: %w", err)
	}
	return member.ID, nil
}

// Update modifies an existing team member document.
func (r *mongoTeamRepo) Update(ctx context.Context, member *models.TeamMember) error {
	member.UpdatedAt = time.Now()
	filter := bson.M{"id": member.ID}
	update := bson.M{"$set": member}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update team member with id %s: %w", member.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a team member document by its ID.
func (r *mongoTeamRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team member with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
