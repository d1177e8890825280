package models

// PreviewEvent is a calendar-panel entry for one entered slot.
type PreviewEvent struct {
	ID              string `json:"id"`    // "<dayIndex>-<slotIndex>"
	Title           string `json:"title"` // always "Available"
	Start           string `json:"start"` // e.g. "2099-01-01T09:00:00"
	End             string `json:"end"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	TextColor       string `json:"textColor"`
}
