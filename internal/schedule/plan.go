// Package schedule builds daily plans: it filters eligible tasks, orders
// them by priority score, and greedily places them into working-hour slots
// aligned with the user's energy curve. Plans are pure output values rebuilt
// from scratch on every call.
package schedule

import (
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/energy"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/priority"
)

// Reason explains why a task could not be placed. Unplaced tasks are a
// normal outcome, not an error.
type Reason string

const (
	ReasonBlockedByDependency  Reason = "blocked-by-dependency"
	ReasonNoMatchingEnergySlot Reason = "no-matching-energy-slot"
	ReasonInsufficientCapacity Reason = "insufficient-capacity"
	ReasonPastDeadline         Reason = "past-deadline"
)

// Slot is a contiguous time block assigned to exactly one task.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Minutes returns the slot length in whole minutes.
func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// Overlaps reports whether two slots share any time.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Entry is one placed task in a plan.
type Entry struct {
	TaskID    string         `json:"task_id"`
	Title     string         `json:"title"`
	Slot      Slot           `json:"slot"`
	Score     priority.Score `json:"score"`
	Rationale string         `json:"rationale"`
}

// Unplaced is a task that did not make it into the plan, with the reason.
type Unplaced struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
	Reason Reason `json:"reason"`
}

// Plan is the ordered daily schedule for one generation call.
type Plan struct {
	Date             string            `json:"date"` // YYYY-MM-DD
	Chronotype       energy.Chronotype `json:"chronotype"`
	WindowStart      time.Time         `json:"window_start"`
	WindowEnd        time.Time         `json:"window_end"`
	Entries          []Entry           `json:"entries"`
	Unplaced         []Unplaced        `json:"unplaced,omitempty"`
	ScheduledMinutes int               `json:"scheduled_minutes"`
	AvailableMinutes int               `json:"available_minutes"`
	Utilization      float64           `json:"utilization"`
	GeneratedAt      time.Time         `json:"generated_at"`
}
