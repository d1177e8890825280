package availability

import (
	"time"

	"github.com/google/uuid"

	"slotcal/models"
)

// DefaultGroupTitle labels submissions when no title is configured.
const DefaultGroupTitle = "Interview Availability"

// Normalizer turns a validated AvailabilitySet into a submission payload.
type Normalizer struct {
	Title string
	// NewID generates group and slot identifiers.
	NewID func() string
	Now   func() time.Time
}

// NewNormalizer returns a Normalizer issuing UUIDs under the given group title.
func NewNormalizer(title string) *Normalizer {
	if title == "" {
		title = DefaultGroupTitle
	}
	return &Normalizer{Title: title, NewID: uuid.NewString, Now: time.Now}
}

// Normalize builds a single-group submission with fresh identifiers for the group and
// every slot. Editing keys carried on the input slots are discarded.
// The set must already have passed Validate.
func (n *Normalizer) Normalize(set models.AvailabilitySet) models.NormalizedSubmission {
	group := models.SubmissionGroup{
		GroupID:   n.NewID(),
		Title:     n.Title,
		Days:      make([]models.SubmissionDay, 0, len(set.Days)),
		CreatedAt: n.Now().UTC(),
	}
	for _, day := range set.Days {
		sd := models.SubmissionDay{
			Date:  day.Date,
			Slots: make([]models.SubmissionSlot, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			sd.Slots = append(sd.Slots, models.SubmissionSlot{
				SlotID: n.NewID(),
				Start:  slot.Start,
				End:    slot.End,
			})
		}
		group.Days = append(group.Days, sd)
	}
	return models.NormalizedSubmission{Groups: []models.SubmissionGroup{group}}
}
