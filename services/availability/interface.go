package availability

import (
	"context"

	"slotcal/models"
)

// AvailabilityService is what the editing surface talks to.
type AvailabilityService interface {
	Validate(set models.AvailabilitySet) models.ValidationResult
	Preview(set models.AvailabilitySet) []models.PreviewEvent
	Save(ctx context.Context, set models.AvailabilitySet) (*models.NormalizedSubmission, models.ValidationResult, error)
	GetGroup(ctx context.Context, groupID string) (*models.SubmissionGroup, error)
	ListGroups(ctx context.Context, date string) ([]models.SubmissionGroup, error)
}

// Submitter hands a normalized submission to the booking collaborator.
type Submitter interface {
	Submit(ctx context.Context, sub models.NormalizedSubmission) error
}

// GroupReader looks up persisted submission groups.
type GroupReader interface {
	GetByGroupID(ctx context.Context, groupID string) (*models.SubmissionGroup, error)
	ListByDate(ctx context.Context, date string) ([]models.SubmissionGroup, error)
}
