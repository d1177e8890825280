package availability_test

import (
	"fmt"
	"testing"
	"time"

	"slotcal/models"
	"slotcal/services/availability"
)

func validTwoDaySet() models.AvailabilitySet {
	return models.AvailabilitySet{Days: []models.AvailabilityDay{
		{Date: "2099-01-01", Slots: []models.TimeSlot{
			{ID: "form-key-1", Start: "09:00", End: "10:00"},
			{ID: "form-key-2", Start: "13:00", End: "14:30"},
		}},
		{Date: "2099-01-02", Slots: []models.TimeSlot{
			{Start: "08:00", End: "08:30"},
		}},
	}}
}

func TestNormalize_ShapeAndUniqueIDs(t *testing.T) {
	set := validTwoDaySet()
	if res := fixedValidator().Validate(set); !res.Valid() {
		t.Fatalf("fixture should be valid: %+v", res.Errors)
	}

	sub := availability.NewNormalizer("").Normalize(set)
	if len(sub.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(sub.Groups))
	}
	group := sub.Groups[0]
	if group.Title != availability.DefaultGroupTitle {
		t.Errorf("title = %q", group.Title)
	}
	if len(group.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(group.Days))
	}
	if sub.SlotCount() != 3 {
		t.Fatalf("expected 3 slots, got %d", sub.SlotCount())
	}

	seen := map[string]bool{group.GroupID: true}
	if group.GroupID == "" {
		t.Error("empty group id")
	}
	for _, day := range group.Days {
		for _, s := range day.Slots {
			if s.SlotID == "" {
				t.Error("empty slot id")
			}
			if s.SlotID == "form-key-1" || s.SlotID == "form-key-2" {
				t.Errorf("editing key %q reused as slot id", s.SlotID)
			}
			if seen[s.SlotID] {
				t.Errorf("duplicate id %q", s.SlotID)
			}
			seen[s.SlotID] = true
		}
	}
}

func TestNormalize_PreservesDatesAndOrder(t *testing.T) {
	counter := 0
	n := &availability.Normalizer{
		Title: "Office hours",
		NewID: func() string {
			counter++
			return fmt.Sprintf("id-%d", counter)
		},
		Now: func() time.Time { return time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC) },
	}

	group := n.Normalize(validTwoDaySet()).Groups[0]
	if group.GroupID != "id-1" || group.Title != "Office hours" {
		t.Errorf("unexpected group header %+v", group)
	}
	want := []models.SubmissionDay{
		{Date: "2099-01-01", Slots: []models.SubmissionSlot{
			{SlotID: "id-2", Start: "09:00", End: "10:00"},
			{SlotID: "id-3", Start: "13:00", End: "14:30"},
		}},
		{Date: "2099-01-02", Slots: []models.SubmissionSlot{
			{SlotID: "id-4", Start: "08:00", End: "08:30"},
		}},
	}
	for i := range want {
		if group.Days[i].Date != want[i].Date {
			t.Errorf("day %d date = %q, want %q", i, group.Days[i].Date, want[i].Date)
		}
		for j := range want[i].Slots {
			if group.Days[i].Slots[j] != want[i].Slots[j] {
				t.Errorf("day %d slot %d = %+v, want %+v", i, j, group.Days[i].Slots[j], want[i].Slots[j])
			}
		}
	}
	if !group.CreatedAt.Equal(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", group.CreatedAt)
	}
}

func TestNormalize_FreshIDsEachCall(t *testing.T) {
	n := availability.NewNormalizer("x")
	a := n.Normalize(validTwoDaySet()).Groups[0]
	b := n.Normalize(validTwoDaySet()).Groups[0]
	if a.GroupID == b.GroupID {
		t.Error("group ids repeated across calls")
	}
	if a.Days[0].Slots[0].SlotID == b.Days[0].Slots[0].SlotID {
		t.Error("slot ids repeated across calls")
	}
}

func TestNormalize_DayWithoutSlots(t *testing.T) {
	set := models.AvailabilitySet{Days: []models.AvailabilityDay{{Date: "2099-05-05"}}}
	day := availability.NewNormalizer("").Normalize(set).Groups[0].Days[0]
	if day.Slots == nil || len(day.Slots) != 0 {
		t.Errorf("expected empty non-nil slots, got %#v", day.Slots)
	}
}
