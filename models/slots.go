package models

// TimeSlot is one contiguous wall-clock window on a day, "HH:MM" 24-hour, no timezone.
type TimeSlot struct {
	ID    string `json:"id,omitempty"` // editing key from the form; never reused in submissions
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityDay is a calendar date ("2006-01-02") plus the slots entered for it.
// Slot order is the user's entry order.
type AvailabilityDay struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// AvailabilitySet is the editor's in-progress form state. Dates are expected to be
// unique but the container does not enforce it.
type AvailabilitySet struct {
	Days []AvailabilityDay `json:"availability"`
}
