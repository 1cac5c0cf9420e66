package teamRepo

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

// ErrNotFound is returned when no team member matches the given id.
var ErrNotFound = errors.New("team member not found")

// TeamMemberRepository defines methods for team member data access.
type TeamMemberRepository interface {
	// GetByID retrieves a team member by its unique ID.
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	// GetBySalonID retrieves all team members of a salon.
	GetBySalonID(ctx context.Context, salonID string) ([]models.TeamMember, error)
	// Create inserts a new team member record and returns its ID.
	Create(ctx context.Context, member *models.TeamMember) (string, error)
	// Update modifies an existing team member record.
	Update(ctx context.Context, member *models.TeamMember) error
	// Delete removes a team member record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoTeamRepo struct {
	coll *mongo.Collection
}

// NewMongoTeamRepo returns a TeamMemberRepository backed by MongoDB.
func NewMongoTeamRepo() TeamMemberRepository {
	repo := &mongoTeamRepo{coll: database.DB().Collection("team_members")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create team member indexes: %v\n", err)
	}
	return repo
}

func (r *mongoTeamRepo) ensureIndexes() error {
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
