package availability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotcal/models"
)

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Validator  *Validator
	Normalizer *Normalizer
	Submitter  Submitter
	Groups     GroupReader
	Logger     *zap.Logger
}

// NewAvailabilityService wires a service with the wall clock and UUID identifiers.
func NewAvailabilityService(submitter Submitter, groups GroupReader, groupTitle string, logger *zap.Logger) *DefaultAvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAvailabilityService{
		Validator:  NewValidator(),
		Normalizer: NewNormalizer(groupTitle),
		Submitter:  submitter,
		Groups:     groups,
		Logger:     logger,
	}
}

func (s *DefaultAvailabilityService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultAvailabilityService) Validate(set models.AvailabilitySet) models.ValidationResult {
	res := s.Validator.Validate(set)
	s.logger().Debug("availability validated",
		zap.Int("days", len(set.Days)),
		zap.Int("errors", len(res.Errors)))
	return res
}

func (s *DefaultAvailabilityService) Preview(set models.AvailabilitySet) []models.PreviewEvent {
	return Preview(set)
}

// Save re-validates the set and, if it is clean, normalizes it and hands it to the
// submitter. An invalid set yields ErrInvalidAvailability together with its errors.
func (s *DefaultAvailabilityService) Save(ctx context.Context, set models.AvailabilitySet) (*models.NormalizedSubmission, models.ValidationResult, error) {
	res := s.Validate(set)
	if !res.Valid() {
		return nil, res, ErrInvalidAvailability
	}

	sub := s.Normalizer.Normalize(set)
	if s.Submitter == nil {
		return nil, res, fmt.Errorf("no submitter configured")
	}
	if err := s.Submitter.Submit(ctx, sub); err != nil {
		return nil, res, fmt.Errorf("failed to submit availability: %w", err)
	}

	s.logger().Info("availability submitted",
		zap.String("groupId", sub.Groups[0].GroupID),
		zap.Int("days", len(set.Days)),
		zap.Int("slots", sub.SlotCount()))
	return &sub, res, nil
}

func (s *DefaultAvailabilityService) GetGroup(ctx context.Context, groupID string) (*models.SubmissionGroup, error) {
	if s.Groups == nil {
		return nil, fmt.Errorf("no group store configured")
	}
	group, err := s.Groups.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	return group, nil
}

// ListGroups returns the stored groups offering slots on date.
func (s *DefaultAvailabilityService) ListGroups(ctx context.Context, date string) ([]models.SubmissionGroup, error) {
	if s.Groups == nil {
		return nil, fmt.Errorf("no group store configured")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, newValidationError(CodeInvalidDateFormat, "Invalid date format")
	}
	groups, err := s.Groups.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for %s: %w", date, err)
	}
	return groups, nil
}
