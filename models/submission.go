package models

import "time"

// NormalizedSubmission is the payload handed to the booking collaborator.
type NormalizedSubmission struct {
	Groups []SubmissionGroup `json:"groups"`
}

// SubmissionGroup is one saved batch of availability.
type SubmissionGroup struct {
	GroupID   string          `bson:"groupId" json:"groupId"`
	Title     string          `bson:"title" json:"title"`
	Days      []SubmissionDay `bson:"days" json:"days"`
	CreatedAt time.Time       `bson:"createdAt" json:"-"`
}

type SubmissionDay struct {
	Date  string           `bson:"date" json:"date"`
	Slots []SubmissionSlot `bson:"slots" json:"slots"`
}

type SubmissionSlot struct {
	SlotID string `bson:"slotId" json:"slotId"`
	Start  string `bson:"start" json:"start"`
	End    string `bson:"end" json:"end"`
}

// SlotCount returns the number of slots across every group and day.
func (s NormalizedSubmission) SlotCount() int {
	n := 0
	for _, g := range s.Groups {
		for _, d := range g.Days {
			n += len(d.Slots)
		}
	}
	return n
}
