package availability_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"slotcal/models"
	"slotcal/services/availability"
)

type recordingSubmitter struct {
	got []models.NormalizedSubmission
	err error
}

func (r *recordingSubmitter) Submit(_ context.Context, sub models.NormalizedSubmission) error {
	if r.err != nil {
		return r.err
	}
	r.got = append(r.got, sub)
	return nil
}

type mapGroups map[string]*models.SubmissionGroup

var errGroupNotFound = errors.New("not found")

func (m mapGroups) GetByGroupID(_ context.Context, id string) (*models.SubmissionGroup, error) {
	g, ok := m[id]
	if !ok {
		return nil, errGroupNotFound
	}
	return g, nil
}

func (m mapGroups) ListByDate(_ context.Context, date string) ([]models.SubmissionGroup, error) {
	var out []models.SubmissionGroup
	for _, g := range m {
		for _, d := range g.Days {
			if d.Date == date {
				out = append(out, *g)
				break
			}
		}
	}
	return out, nil
}

func newTestService(sub availability.Submitter, groups availability.GroupReader) *availability.DefaultAvailabilityService {
	svc := availability.NewAvailabilityService(sub, groups, "Interview Availability", zap.NewNop())
	svc.Validator = fixedValidator()
	return svc
}

func TestService_SaveValid(t *testing.T) {
	sub := &recordingSubmitter{}
	svc := newTestService(sub, nil)

	out, res, err := svc.Save(context.Background(), validTwoDaySet())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("unexpected errors %+v", res.Errors)
	}
	if len(sub.got) != 1 {
		t.Fatalf("expected one submission, got %d", len(sub.got))
	}
	if out.Groups[0].GroupID != sub.got[0].Groups[0].GroupID {
		t.Error("returned submission differs from submitted one")
	}
}

func TestService_SaveInvalidDoesNotSubmit(t *testing.T) {
	sub := &recordingSubmitter{}
	svc := newTestService(sub, nil)

	set := models.AvailabilitySet{Days: []models.AvailabilityDay{{Date: "2020-01-01"}}}
	out, res, err := svc.Save(context.Background(), set)
	if !errors.Is(err, availability.ErrInvalidAvailability) {
		t.Fatalf("err = %v, want ErrInvalidAvailability", err)
	}
	if out != nil {
		t.Error("expected nil submission")
	}
	if res.Valid() {
		t.Error("expected validation errors")
	}
	if len(sub.got) != 0 {
		t.Error("invalid set was submitted")
	}
}

func TestService_SaveSubmitterFailure(t *testing.T) {
	boom := errors.New("queue down")
	svc := newTestService(&recordingSubmitter{err: boom}, nil)

	_, _, err := svc.Save(context.Background(), validTwoDaySet())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestService_GetGroup(t *testing.T) {
	groups := mapGroups{"g1": {GroupID: "g1", Title: "t"}}
	svc := newTestService(&recordingSubmitter{}, groups)

	g, err := svc.GetGroup(context.Background(), "g1")
	if err != nil || g.GroupID != "g1" {
		t.Fatalf("GetGroup = %+v, %v", g, err)
	}
	if _, err := svc.GetGroup(context.Background(), "missing"); !errors.Is(err, errGroupNotFound) {
		t.Errorf("err = %v, want wrapped not found", err)
	}
}

func TestService_ListGroups(t *testing.T) {
	groups := mapGroups{
		"g1": {GroupID: "g1", Days: []models.SubmissionDay{{Date: "2099-01-01"}}},
		"g2": {GroupID: "g2", Days: []models.SubmissionDay{{Date: "2099-01-02"}}},
	}
	svc := newTestService(&recordingSubmitter{}, groups)

	got, err := svc.ListGroups(context.Background(), "2099-01-02")
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if len(got) != 1 || got[0].GroupID != "g2" {
		t.Errorf("unexpected groups %+v", got)
	}

	_, err = svc.ListGroups(context.Background(), "tomorrow")
	if availability.CodeOf(err) != availability.CodeInvalidDateFormat {
		t.Errorf("err = %v, want InvalidDateFormat", err)
	}
}
