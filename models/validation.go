package models

import "fmt"

// FieldError is one validation failure attached to a form path.
// Slot is -1 when the error is scoped to the whole day.
type FieldError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Day     int    `json:"day"`
	Slot    int    `json:"slot"`
}

// ValidationResult lists every failure found in an AvailabilitySet, in the order
// they were detected. An empty result means the set is valid.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether no errors were recorded.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Map returns the path to message mapping the editor renders inline.
func (r ValidationResult) Map() map[string]string {
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		m[e.Path] = e.Message
	}
	return m
}

// ForDay returns the errors attached to day index i, including its slots.
func (r ValidationResult) ForDay(i int) []FieldError {
	var out []FieldError
	for _, e := range r.Errors {
		if e.Day == i {
			out = append(out, e)
		}
	}
	return out
}

func DayPath(day int) string {
	return fmt.Sprintf("availability[%d]", day)
}

func DatePath(day int) string {
	return DayPath(day) + ".date"
}

func SlotsPath(day int) string {
	return DayPath(day) + ".slots"
}

func SlotPath(day, slot int) string {
	return fmt.Sprintf("%s[%d]", SlotsPath(day), slot)
}
