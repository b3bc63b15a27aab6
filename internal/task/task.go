package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnergyLevel is the energy a task demands, ordered LOW < MEDIUM < HIGH.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Ordinal returns the comparison rank of the level (LOW=0, MEDIUM=1, HIGH=2).
func (e EnergyLevel) Ordinal() int {
	switch e {
	case EnergyLow:
		return 0
	case EnergyMedium:
		return 1
	case EnergyHigh:
		return 2
	}
	return -1
}

// Priority is the caller-declared importance band of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Weight maps the priority band onto [0,1] for scoring.
func (p Priority) Weight() float64 {
	switch p {
	case PriorityLow:
		return 0.25
	case PriorityMedium:
		return 0.5
	case PriorityHigh:
		return 0.75
	case PriorityCritical:
		return 1.0
	}
	return 0
}

// Mode describes how the task is performed.
type Mode string

const (
	ModeSync   Mode = "sync"
	ModeAsync  Mode = "async"
	ModeHybrid Mode = "hybrid"
)

// Flexibility describes how movable a task's placement is.
type Flexibility string

const (
	FlexRigid        Flexibility = "rigid"
	FlexSemiFlexible Flexibility = "semi_flexible"
	FlexFlexible     Flexibility = "flexible"
)

// Status is the lifecycle state of a task. The engine never mutates it;
// status changes come from the caller as work proceeds.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusCancelled  Status = "cancelled"
)

// Schedulable reports whether a task in this status may still be placed.
func (s Status) Schedulable() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// Task is the unit of work. Fields mirror the structured metadata the
// scheduler reasons over; see Validate for the invariants.
type Task struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Duration     int         `json:"duration"` // minutes
	Priority     Priority    `json:"priority"`
	Deadline     *time.Time  `json:"deadline,omitempty"`
	Dependencies []string    `json:"dependencies,omitempty"`
	Energy       EnergyLevel `json:"energy"`
	Location     string      `json:"location,omitempty"`
	Participants []string    `json:"participants,omitempty"`
	Mode         Mode        `json:"mode"`
	Effort       int         `json:"effort"` // 1-10
	Flexibility  Flexibility `json:"flexibility"`
	Status       Status      `json:"status"`
	Reward       int         `json:"reward"` // 1-10
	Tools        []string    `json:"tools,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ValidationError reports a malformed task or configuration value. It is
// raised at construction time and never coerced away.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// New builds a task with defaults matching an unremarkable medium task,
// assigns a fresh identifier, and validates the result.
func New(title string, duration int, opts ...Option) (*Task, error) {
	t := &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Duration:    duration,
		Priority:    PriorityMedium,
		Energy:      EnergyMedium,
		Mode:        ModeSync,
		Effort:      5,
		Flexibility: FlexFlexible,
		Status:      StatusNotStarted,
		Reward:      5,
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Option mutates a task under construction.
type Option func(*Task)

func WithDescription(d string) Option { return func(t *Task) { t.Description = d } }
func WithPriority(p Priority) Option  { return func(t *Task) { t.Priority = p } }
func WithDeadline(d time.Time) Option { return func(t *Task) { t.Deadline = &d } }

func WithDependencies(ids ...string) Option {
	return func(t *Task) { t.Dependencies = append(t.Dependencies, ids...) }
}

func WithEnergy(e EnergyLevel) Option { return func(t *Task) { t.Energy = e } }
func WithLocation(l string) Option    { return func(t *Task) { t.Location = l } }

func WithParticipants(p ...string) Option {
	return func(t *Task) { t.Participants = append(t.Participants, p...) }
}

func WithMode(m Mode) Option               { return func(t *Task) { t.Mode = m } }
func WithEffort(e int) Option              { return func(t *Task) { t.Effort = e } }
func WithFlexibility(f Flexibility) Option { return func(t *Task) { t.Flexibility = f } }
func WithStatus(s Status) Option           { return func(t *Task) { t.Status = s } }
func WithReward(r int) Option              { return func(t *Task) { t.Reward = r } }

func WithTools(tools ...string) Option {
	return func(t *Task) { t.Tools = append(t.Tools, tools...) }
}

func WithID(id string) Option { return func(t *Task) { t.ID = id } }

// Validate checks the task invariants: positive duration, effort and reward
// in [1,10], known enum values, and no self-referential dependency.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if t.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: fmt.Sprintf("must be positive, got %d", t.Duration)}
	}
	if t.Effort < 1 || t.Effort > 10 {
		return &ValidationError{Field: "effort", Reason: fmt.Sprintf("must be in 1..10, got %d", t.Effort)}
	}
	if t.Reward < 1 || t.Reward > 10 {
		return &ValidationError{Field: "reward", Reason: fmt.Sprintf("must be in 1..10, got %d", t.Reward)}
	}
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
	default:
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", t.Priority)}
	}
	if t.Energy.Ordinal() < 0 {
		return &ValidationError{Field: "energy", Reason: fmt.Sprintf("unknown value %q", t.Energy)}
	}
	switch t.Mode {
	case ModeSync, ModeAsync, ModeHybrid:
	default:
		return &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown value %q", t.Mode)}
	}
	switch t.Flexibility {
	case FlexRigid, FlexSemiFlexible, FlexFlexible:
	default:
		return &ValidationError{Field: "flexibility", Reason: fmt.Sprintf("unknown value %q", t.Flexibility)}
	}
	switch t.Status {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked, StatusCancelled:
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", t.Status)}
	}
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			return &ValidationError{Field: "dependencies", Reason: "task cannot depend on itself"}
		}
	}
	return nil
}

// Overdue reports whether the task has a deadline in the past relative to now.
func (t *Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now)
}

// ParseEnergyLevel converts user input into an EnergyLevel.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch EnergyLevel(strings.ToLower(s)) {
	case EnergyLow:
		return EnergyLow, nil
	case EnergyMedium:
		return EnergyMedium, nil
	case EnergyHigh:
		return EnergyHigh, nil
	}
	return "", &ValidationError{Field: "energy", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(s)) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityCritical:
		return PriorityCritical, nil
	}
	return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ParseFlexibility converts user input into a Flexibility.
func ParseFlexibility(s string) (Flexibility, error) {
	switch Flexibility(strings.ToLower(s)) {
	case FlexRigid:
		return FlexRigid, nil
	case FlexSemiFlexible:
		return FlexSemiFlexible, nil
	case FlexFlexible:
		return FlexFlexible, nil
	}
	return "", &ValidationError{Field: "flexibility", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeSync:
		return ModeSync, nil
	case ModeAsync:
		return ModeAsync, nil
	case ModeHybrid:
		return ModeHybrid, nil
	}
	return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown value %q", s)}
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusNotStarted:
		return StatusNotStarted, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusBlocked:
		return StatusBlocked, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown value %q", s)}
}
