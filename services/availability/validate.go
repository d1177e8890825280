package availability

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"slotcal/models"
)

const dateLayout = "2006-01-02"

// timePattern accepts zero-padded 24-hour "HH:MM", 00:00 through 23:59.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Validator checks an AvailabilitySet as the user edits it. It holds no state
// besides the clock, so one value can be shared freely.
type Validator struct {
	// Now supplies "today" for the past-date check.
	Now func() time.Time
}

// NewValidator returns a Validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

func (v *Validator) today() time.Time {
	y, m, d := v.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateDate checks that the day carries a parseable date that is not before today.
func (v *Validator) ValidateDate(day models.AvailabilityDay) error {
	if day.Date == "" {
		return newValidationError(CodeMissingDate, "Date is required")
	}
	date, err := time.Parse(dateLayout, day.Date)
	if err != nil {
		return newValidationError(CodeInvalidDateFormat, "Invalid date format")
	}
	if date.Before(v.today()) {
		return newValidationError(CodePastDate, "Date cannot be in the past")
	}
	return nil
}

// ValidateSlot checks both bounds are present, well formed, and that end is after start.
// Slots crossing midnight are rejected because end sorts before start.
func ValidateSlot(slot models.TimeSlot) error {
	if slot.Start == "" {
		return newValidationError(CodeMissingStart, "Start time is required")
	}
	if slot.End == "" {
		return newValidationError(CodeMissingEnd, "End time is required")
	}
	if !timePattern.MatchString(slot.Start) || !timePattern.MatchString(slot.End) {
		return newValidationError(CodeInvalidTimeFormat, "Invalid time format")
	}
	if slot.End <= slot.Start {
		return newValidationError(CodeEndBeforeStart, "End time must be after start time")
	}
	return nil
}

// ValidateNoOverlap reports the first pair of slots that share time, ordered by start.
// Back-to-back slots are allowed. The input slice is left untouched.
func ValidateNoOverlap(slots []models.TimeSlot) error {
	if len(slots) < 2 {
		return nil
	}
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b models.TimeSlot) int {
		return strings.Compare(a.Start, b.Start)
	})
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].End > sorted[i+1].Start {
			return newValidationError(CodeOverlappingSlots, "Periods cannot overlap")
		}
	}
	return nil
}

// ValidateNoDuplicateDates returns the index of the first day whose non-empty date
// already appeared earlier in the list, or -1 and nil when dates are unique.
// Only the first duplicate is reported.
func ValidateNoDuplicateDates(days []models.AvailabilityDay) (int, error) {
	seen := make(map[string]struct{}, len(days))
	for i, day := range days {
		if day.Date == "" {
			continue
		}
		if _, ok := seen[day.Date]; ok {
			return i, newValidationError(CodeDuplicateDate, "Date is already used by another day")
		}
		seen[day.Date] = struct{}{}
	}
	return -1, nil
}

// Validate runs every check over every day and slot and collects all failures.
// It never stops at the first failing day.
func (v *Validator) Validate(set models.AvailabilitySet) models.ValidationResult {
	var res models.ValidationResult
	for d, day := range set.Days {
		if err := v.ValidateDate(day); err != nil {
			res.Errors = append(res.Errors, fieldError(models.DatePath(d), d, -1, err))
		}

		bounded := make([]models.TimeSlot, 0, len(day.Slots))
		for s, slot := range day.Slots {
			if err := ValidateSlot(slot); err != nil {
				res.Errors = append(res.Errors, fieldError(models.SlotPath(d, s), d, s, err))
			}
			if hasTimeBounds(slot) {
				bounded = append(bounded, slot)
			}
		}
		if err := ValidateNoOverlap(bounded); err != nil {
			res.Errors = append(res.Errors, fieldError(models.SlotsPath(d), d, -1, err))
		}
	}

	if idx, err := ValidateNoDuplicateDates(set.Days); err != nil {
		res.Errors = append(res.Errors, fieldError(models.DayPath(idx), idx, -1, err))
	}
	return res
}

// hasTimeBounds reports whether both bounds are well-formed times. Slots with a
// missing or malformed bound stay out of the overlap check; reversed slots do not.
func hasTimeBounds(slot models.TimeSlot) bool {
	return timePattern.MatchString(slot.Start) && timePattern.MatchString(slot.End)
}

func fieldError(path string, day, slot int, err error) models.FieldError {
	fe := models.FieldError{Path: path, Day: day, Slot: slot, Message: err.Error()}
	if ve, ok := err.(*ValidationError); ok {
		fe.Code = ve.Code
		fe.Message = ve.Message
	}
	return fe
}
