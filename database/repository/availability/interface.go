package availabilityRepo

import (
	"context"
	"errors"

	"slotcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrGroupNotFound is returned when no group matches the requested id.
var ErrGroupNotFound = errors.New("availability group not found")

// SubmissionRepository persists submitted availability groups.
type SubmissionRepository interface {
	SaveGroup(ctx context.Context, group models.SubmissionGroup) error
	GetByGroupID(ctx context.Context, groupID string) (*models.SubmissionGroup, error)
	ListByDate(ctx context.Context, date string) ([]models.SubmissionGroup, error)
	EnsureIndexes() error
}

type mongoSubmissionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubmissionRepo constructs a MongoDB SubmissionRepository on the given database.
func NewMongoSubmissionRepo(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepo{
		coll: db.Collection("availability_groups"),
	}
}
