// Package healthlog implements the AI-verified health event pipeline:
// evidence analysis, the admission gate, the append-only event log and the
// trend signals derived from it.
package healthlog

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of health event recorded.
type EventType string

const (
	EventHydration EventType = "hydration"
	EventJaundice  EventType = "jaundice"
)

// HealthEvent is one immutable entry in a user's health log. Events are
// append-only: once written they are never updated or deleted.
type HealthEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	EventType EventType `json:"event_type"`

	// Value is the numeric measurement: milliliters for hydration,
	// the 0-10 scleral index for jaundice.
	Value float64 `json:"value"`

	Verified  bool      `json:"verified"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// HydrationResult is the structured verdict of a hydration video analysis.
type HydrationResult struct {
	IsDrinking  bool   `json:"is_drinking"`
	ML          int    `json:"ml"`
	Explanation string `json:"explanation"`
}

// JaundiceResult is the structured verdict of a sclera image analysis.
type JaundiceResult struct {
	YellowIndex float64 `json:"yellow_index"`
	Status      string  `json:"status"`
	Observation string  `json:"observation"`
}

// HydrationOutcome is returned to the caller after a verified drink.
type HydrationOutcome struct {
	Verified    bool    `json:"verified"`
	MLAdded     int     `json:"ml_added"`
	DrinksToday int     `json:"drinks_today"`
	ProgressPct float64 `json:"progress_percentage"`
	Message     string  `json:"message"`
}

// JaundiceOutcome is returned to the caller after a sclera check.
type JaundiceOutcome struct {
	YellowIndex float64 `json:"yellow_index"`
	Status      string  `json:"status"`
	Observation string  `json:"observation"`
	RiskRising  bool    `json:"risk_rising"`
	Alert       bool    `json:"alert"`
	Message     string  `json:"message"`
}
