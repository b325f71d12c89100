package persistence

import "github.com/example/faculty-scheduler/internal/schedule"

// Faculty is a flat faculty record. Photo carries the raw image bytes; JSON
// encoding stores it as base64 and it must round-trip byte-for-byte.
type Faculty struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Photo      []byte `json:"photo,omitempty"`
}

// Room is a flat room record keyed by its room number.
type Room struct {
	Number     string `json:"number"`
	Capacity   int    `json:"capacity"`
	Type       string `json:"type"`
	Facilities string `json:"facilities,omitempty"`
}

// TimePeriod is a recurring daily interval with the weekdays it applies to.
// The label is the derived "HH:MM - HH:MM" form; two records may share a
// label as long as their weekday sets differ.
type TimePeriod struct {
	Label string             `json:"slot"`
	Start string             `json:"start"`
	End   string             `json:"end"`
	Days  []schedule.Weekday `json:"days"`
}

// Subject is a flat subject record keyed by its code.
type Subject struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits,omitempty"`
	Department string `json:"department,omitempty"`
}
