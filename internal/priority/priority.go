// Package priority scores tasks across urgency, importance, effort and
// wellbeing, and ranks them for recommendation. Scoring is a pure function
// of the task and the supplied clock value; nothing is cached between calls
// because deadline proximity is time-relative.
package priority

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

// weightTolerance is how far the four weights may drift from summing to 1.0.
const weightTolerance = 0.001

// Proximity baseline for tasks without a deadline.
const noDeadlineProximity = 0.1

// Weights configures the composite score. The four values must sum to 1.0
// within tolerance; Validate enforces this before any scoring happens.
type Weights struct {
	Urgency    float64 `toml:"urgency" json:"urgency"`
	Importance float64 `toml:"importance" json:"importance"`
	Effort     float64 `toml:"effort" json:"effort"`
	Wellbeing  float64 `toml:"wellbeing" json:"wellbeing"`
}

// DefaultWeights mirrors the stock configuration: urgency 0.30,
// importance 0.35, effort 0.15, wellbeing 0.20.
func DefaultWeights() Weights {
	return Weights{Urgency: 0.30, Importance: 0.35, Effort: 0.15, Wellbeing: 0.20}
}

// Validate fails fast when the weights do not sum to 1.0 within tolerance
// or any weight is negative.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"urgency": w.Urgency, "importance": w.Importance,
		"effort": w.Effort, "wellbeing": w.Wellbeing,
	} {
		if v < 0 {
			return &task.ValidationError{Field: "weights." + name, Reason: fmt.Sprintf("must not be negative, got %g", v)}
		}
	}
	sum := w.Urgency + w.Importance + w.Effort + w.Wellbeing
	if math.Abs(sum-1.0) > weightTolerance {
		return &task.ValidationError{Field: "weights", Reason: fmt.Sprintf("must sum to 1.0, got %g", sum)}
	}
	return nil
}

// Score is the derived, ephemeral breakdown for one task. All values are
// clamped to [0,1].
type Score struct {
	Urgency    float64 `json:"urgency"`
	Importance float64 `json:"importance"`
	Effort     float64 `json:"effort"` // inverted: lower effort scores higher
	Wellbeing  float64 `json:"wellbeing"`
	Composite  float64 `json:"composite"`
}

// Engine computes scores with a validated weight configuration.
type Engine struct {
	weights Weights
}

// NewEngine validates the weights and returns a scoring engine.
func NewEngine(w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: w}, nil
}

// Weights returns the engine's configuration.
func (e *Engine) Weights() Weights { return e.weights }

// deadlineProximity maps time-until-deadline onto [0,1]. Closer deadlines
// score higher; a passed deadline saturates at 1.0 instead of going negative.
func deadlineProximity(t *task.Task, now time.Time) float64 {
	if t.Deadline == nil {
		return noDeadlineProximity
	}
	until := t.Deadline.Sub(now)
	switch {
	case until <= 0:
		return 1.0
	case until < 24*time.Hour:
		return 0.8
	case until < 72*time.Hour:
		return 0.6
	case until < 7*24*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Evaluate computes the full score breakdown for a task at the given time.
func (e *Engine) Evaluate(t *task.Task, now time.Time) Score {
	urgency := clamp01(0.5*t.Priority.Weight() + 0.5*deadlineProximity(t, now))
	importance := clamp01(0.6*t.Priority.Weight() + 0.4*float64(t.Reward)/10.0)
	effort := clamp01(1.0 - float64(t.Effort)/10.0)
	wellbeing := clamp01(0.6*float64(t.Reward)/10.0 + 0.4*(1.0-float64(t.Effort)/10.0))

	composite := urgency*e.weights.Urgency +
		importance*e.weights.Importance +
		effort*e.weights.Effort +
		wellbeing*e.weights.Wellbeing

	return Score{
		Urgency:    urgency,
		Importance: importance,
		Effort:     effort,
		Wellbeing:  wellbeing,
		Composite:  clamp01(composite),
	}
}

// Ranked pairs a task with its score and a templated rationale.
type Ranked struct {
	Task      *task.Task `json:"task"`
	Score     Score      `json:"score"`
	Rationale string     `json:"rationale"`
}

// Constraints narrows the eligible task set for filtering and
// recommendation. Location empty means no location constraint; Duration <= 0
// means no duration cutoff.
type Constraints struct {
	Energy   task.EnergyLevel
	Location string
	Duration int // minutes
}

// Filter returns the tasks that are schedulable under the constraints:
// status not terminal, duration within the available time, energy demand at
// or below the available level, and location unset or matching.
func (e *Engine) Filter(tasks []*task.Task, c Constraints) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		if !t.Status.Schedulable() {
			continue
		}
		if c.Duration > 0 && t.Duration > c.Duration {
			continue
		}
		if t.Energy.Ordinal() > c.Energy.Ordinal() {
			continue
		}
		if c.Location != "" && t.Location != "" && t.Location != c.Location {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Rank sorts tasks by composite score descending. Ties break by earlier
// deadline, then higher reward, then input order, so output is deterministic.
func (e *Engine) Rank(tasks []*task.Task, now time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(tasks))
	for _, t := range tasks {
		s := e.Evaluate(t, now)
		ranked = append(ranked, Ranked{Task: t, Score: s, Rationale: e.Rationale(t, s, now)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[j], ranked[i])
	})
	return ranked
}

// Less orders two ranked tasks ascending by the tie-break chain
// (score, deadline, reward). Used with SliceStable so equal entries keep
// input order.
func Less(a, b Ranked) bool {
	if a.Score.Composite != b.Score.Composite {
		return a.Score.Composite < b.Score.Composite
	}
	ad, bd := a.Task.Deadline, b.Task.Deadline
	if ad != nil || bd != nil {
		switch {
		case ad == nil:
			return true // no deadline sorts below an actual one
		case bd == nil:
			return false
		case !ad.Equal(*bd):
			return bd.Before(*ad)
		}
	}
	return a.Task.Reward < b.Task.Reward
}

// Recommend filters by constraints, ranks the survivors, and returns at most
// topN entries with score breakdowns and rationales.
func (e *Engine) Recommend(tasks []*task.Task, c Constraints, now time.Time, topN int) []Ranked {
	ranked := e.Rank(e.Filter(tasks, c), now)
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Rationale renders a short human-readable explanation of a score: which
// sub-scores dominate, plus an overdue flag when the deadline has passed.
func (e *Engine) Rationale(t *task.Task, s Score, now time.Time) string {
	var reasons []string
	if s.Urgency > 0.7 {
		reasons = append(reasons, "high urgency")
	}
	if s.Importance > 0.7 {
		reasons = append(reasons, "high importance")
	}
	if s.Wellbeing > 0.7 {
		reasons = append(reasons, "positive wellbeing impact")
	}
	if t.Effort <= 3 {
		reasons = append(reasons, "low effort")
	}
	if t.Overdue(now) {
		reasons = append(reasons, "overdue")
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("balanced pick (score %.2f)", s.Composite)
	}
	return strings.Join(reasons, ", ")
}
