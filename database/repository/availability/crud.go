package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotcal/models"
)

// SaveGroup upserts by groupId so a redelivered queue task does not create a second copy.
// createdAt is only written on insert.
func (r *mongoSubmissionRepo) SaveGroup(ctx context.Context, group models.SubmissionGroup) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if group.GroupID == "" {
		return fmt.Errorf("group id is required")
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}

	filter := bson.M{"groupId": group.GroupID}
	_, err := r.coll.UpdateOne(ctx, filter, groupUpsert(group), options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save group %s: %w", group.GroupID, err)
	}
	return nil
}

func groupUpsert(group models.SubmissionGroup) bson.M {
	return bson.M{
		"$set": bson.M{
			"title": group.Title,
			"days":  group.Days,
		},
		"$setOnInsert": bson.M{
			"groupId":   group.GroupID,
			"createdAt": group.CreatedAt,
		},
	}
}

func (r *mongoSubmissionRepo) GetByGroupID(ctx context.Context, groupID string) (*models.SubmissionGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.SubmissionGroup
	err := r.coll.FindOne(ctx, bson.M{"groupId": groupID}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListByDate returns every group offering at least one slot on date, newest first.
func (r *mongoSubmissionRepo) ListByDate(ctx context.Context, date string) ([]models.SubmissionGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"days.date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []models.SubmissionGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
