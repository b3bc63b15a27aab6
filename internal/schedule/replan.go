package schedule

import (
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

// State is the replanning controller's current phase.
type State string

const (
	StateStable     State = "stable"
	StateReplanning State = "replanning"
)

// Replanner reacts to an interruption by regenerating a plan for whatever
// remains of the day. It always transitions back to Stable: an infeasible
// replan degrades to a plan with a non-empty unplaced list, never an error.
//
// The controller holds no lock; callers with concurrent interruption sources
// must serialize their calls.
type Replanner struct {
	alloc         *Allocator
	dayEndHour    int
	breakDuration int
	maxTasks      int
	state         State
}

// NewReplanner builds a controller that truncates the replanning window to
// [interruption time, dayEndHour on the same day].
func NewReplanner(alloc *Allocator, dayEndHour, breakDuration, maxTasks int) *Replanner {
	return &Replanner{
		alloc:         alloc,
		dayEndHour:    dayEndHour,
		breakDuration: breakDuration,
		maxTasks:      maxTasks,
		state:         StateStable,
	}
}

// State returns the controller's current phase.
func (r *Replanner) State() State { return r.state }

// ReplanOnInterruption rebuilds the day from currentTime onward. The
// interrupted task re-enters the pool with its duration cut down to the
// remaining minutes; completed tasks are excluded as usual.
func (r *Replanner) ReplanOnInterruption(tasks []*task.Task, currentTime time.Time, interruptedID string, remainingDuration int) (*Plan, error) {
	if remainingDuration <= 0 {
		return nil, &task.ValidationError{Field: "remaining_duration", Reason: "must be positive"}
	}

	found := false
	snapshot := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == interruptedID {
			clone := *t
			clone.Duration = remainingDuration
			clone.Status = task.StatusInProgress
			snapshot = append(snapshot, &clone)
			found = true
			continue
		}
		snapshot = append(snapshot, t)
	}
	if !found {
		return nil, &task.ValidationError{Field: "interrupted_task_id", Reason: "not present in snapshot"}
	}

	r.state = StateReplanning
	defer func() { r.state = StateStable }()

	dayEnd := time.Date(currentTime.Year(), currentTime.Month(), currentTime.Day(),
		r.dayEndHour, 0, 0, 0, currentTime.Location())

	plan := r.alloc.GenerateDailyPlan(Request{
		Tasks:         snapshot,
		WindowStart:   currentTime,
		WindowEnd:     dayEnd,
		BreakDuration: r.breakDuration,
		MaxTasks:      r.maxTasks,
		Now:           currentTime,
	})
	return plan, nil
}
