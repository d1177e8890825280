package availability

import (
	"strconv"

	"slotcal/models"
)

const (
	previewTitle      = "Available"
	previewBackground = "#10b981"
	previewBorder     = "#059669"
	previewText       = "#ffffff"
)

// Preview converts the entered availability into calendar events for the side panel.
// Days without a date and slots missing either bound are skipped.
func Preview(set models.AvailabilitySet) []models.PreviewEvent {
	events := []models.PreviewEvent{}
	for d, day := range set.Days {
		if day.Date == "" {
			continue
		}
		for s, slot := range day.Slots {
			if slot.Start == "" || slot.End == "" {
				continue
			}
			events = append(events, models.PreviewEvent{
				ID:              strconv.Itoa(d) + "-" + strconv.Itoa(s),
				Title:           previewTitle,
				Start:           day.Date + "T" + slot.Start + ":00",
				End:             day.Date + "T" + slot.End + ":00",
				BackgroundColor: previewBackground,
				BorderColor:     previewBorder,
				TextColor:       previewText,
			})
		}
	}
	return events
}
