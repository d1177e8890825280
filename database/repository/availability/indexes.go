package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability_groups collection.
func (r *mongoSubmissionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "groupId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_group_id"),
		},
		// ListByDate
		{
			Keys:    bson.D{{Key: "days.date", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("day_date_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability group indexes: %w", err)
	}
	return nil
}
