package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/energy"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/priority"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

// bufferPercent of a task's duration is reserved as idle time after each
// placement so the day is not packed back to back.
const bufferPercent = 12

// breakAfterMinutes of cumulative scheduled work triggers one break
// reservation of the configured break duration.
const breakAfterMinutes = 240

// semiFlexDrift is how far a SEMI_FLEXIBLE task may start from its ideal
// energy window.
const semiFlexDrift = 2 * time.Hour

// Request carries everything one plan generation needs. Now is the injected
// clock value; two calls with identical requests produce identical plans.
type Request struct {
	Tasks         []*task.Task
	WindowStart   time.Time
	WindowEnd     time.Time
	BreakDuration int // minutes, reserved once per 4h of scheduled work
	MaxTasks      int // 0 = unlimited
	Now           time.Time
}

// Allocator places tasks into a working-hours window. It holds no mutable
// schedule state; every call works off the supplied snapshot alone.
type Allocator struct {
	engine *priority.Engine
	model  *energy.Model
}

// NewAllocator wires a scoring engine to an energy model.
func NewAllocator(engine *priority.Engine, model *energy.Model) *Allocator {
	return &Allocator{engine: engine, model: model}
}

// interval is a free span of the working window, half-open.
type interval struct {
	start, end time.Time
}

func (iv interval) minutes() int {
	return int(iv.end.Sub(iv.start) / time.Minute)
}

// GenerateDailyPlan runs the full pipeline: eligibility filter, priority
// ordering, greedy slot search with buffers and breaks, and reporting of
// everything that did not fit.
func (a *Allocator) GenerateDailyPlan(req Request) *Plan {
	plan := &Plan{
		Date:        req.WindowStart.Format("2006-01-02"),
		Chronotype:  a.model.Chronotype(),
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		GeneratedAt: req.Now,
	}
	if req.WindowEnd.After(req.WindowStart) {
		plan.AvailableMinutes = int(req.WindowEnd.Sub(req.WindowStart) / time.Minute)
	}

	eligible, blocked := a.splitByDependencies(req.Tasks)
	for _, t := range blocked {
		plan.Unplaced = append(plan.Unplaced, Unplaced{TaskID: t.ID, Title: t.Title, Reason: ReasonBlockedByDependency})
	}

	ranked := a.engine.Rank(eligible, req.Now)

	free := []interval{}
	if req.WindowEnd.After(req.WindowStart) {
		free = append(free, interval{req.WindowStart, req.WindowEnd})
	}
	workSinceBreak := 0

	for i, r := range ranked {
		if req.MaxTasks > 0 && len(plan.Entries) >= req.MaxTasks {
			a.reportLeftover(plan, ranked[i:], req.Now)
			break
		}
		if freeMinutes(free) < shortestDuration(ranked[i:]) {
			a.reportLeftover(plan, ranked[i:], req.Now)
			break
		}

		slot, note, reason := a.findSlot(free, r.Task)
		if reason != "" {
			if reason == ReasonInsufficientCapacity && r.Task.Overdue(req.Now) {
				reason = ReasonPastDeadline
			}
			plan.Unplaced = append(plan.Unplaced, Unplaced{TaskID: r.Task.ID, Title: r.Task.Title, Reason: reason})
			continue
		}

		rationale := r.Rationale
		if note != "" {
			rationale += "; " + note
		}
		plan.Entries = append(plan.Entries, Entry{
			TaskID:    r.Task.ID,
			Title:     r.Task.Title,
			Slot:      slot,
			Score:     r.Score,
			Rationale: rationale,
		})
		plan.ScheduledMinutes += r.Task.Duration

		// Reserve the slot plus a recovery buffer after it.
		buffer := (r.Task.Duration*bufferPercent + 99) / 100
		reserved := slot
		reserved.End = reserved.End.Add(time.Duration(buffer) * time.Minute)
		free = subtract(free, reserved)

		workSinceBreak += r.Task.Duration
		if req.BreakDuration > 0 && workSinceBreak >= breakAfterMinutes {
			pause := Slot{
				Start: reserved.End,
				End:   reserved.End.Add(time.Duration(req.BreakDuration) * time.Minute),
			}
			free = subtract(free, pause)
			workSinceBreak -= breakAfterMinutes
		}
	}

	sortEntries(plan.Entries)

	if plan.AvailableMinutes > 0 {
		plan.Utilization = float64(plan.ScheduledMinutes) / float64(plan.AvailableMinutes)
	}
	return plan
}

// splitByDependencies drops terminal-status tasks entirely and separates the
// rest into eligible tasks and tasks with an unmet dependency. A dependency
// counts as met only when that task appears in the snapshot with COMPLETED
// status.
func (a *Allocator) splitByDependencies(tasks []*task.Task) (eligible, blocked []*task.Task) {
	completed := make(map[string]bool)
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed[t.ID] = true
		}
	}
	for _, t := range tasks {
		if !t.Status.Schedulable() {
			continue
		}
		met := true
		for _, dep := range t.Dependencies {
			if !completed[dep] {
				met = false
				break
			}
		}
		if met {
			eligible = append(eligible, t)
		} else {
			blocked = append(blocked, t)
		}
	}
	return eligible, blocked
}

func (a *Allocator) reportLeftover(plan *Plan, rest []priority.Ranked, now time.Time) {
	for _, r := range rest {
		reason := ReasonInsufficientCapacity
		if r.Task.Overdue(now) {
			reason = ReasonPastDeadline
		}
		plan.Unplaced = append(plan.Unplaced, Unplaced{TaskID: r.Task.ID, Title: r.Task.Title, Reason: reason})
	}
}

// candidate is one feasible placement of a task.
type candidate struct {
	slot     Slot
	mismatch int // summed ordinal distance from the required energy level
}

// findSlot searches the free intervals for a block matching the task's
// duration and energy requirement under its flexibility policy. It returns
// a non-empty reason when no placement is allowed.
func (a *Allocator) findSlot(free []interval, t *task.Task) (Slot, string, Reason) {
	cands := a.candidates(free, t)
	if len(cands) == 0 {
		return Slot{}, "", ReasonInsufficientCapacity
	}

	// Earliest exact-energy placement wins for every flexibility class.
	for _, c := range cands {
		if c.mismatch == 0 {
			return c.slot, fmt.Sprintf("placed in a %s-energy window", t.Energy), ""
		}
	}

	switch t.Flexibility {
	case task.FlexRigid:
		return Slot{}, "", ReasonNoMatchingEnergySlot
	case task.FlexSemiFlexible:
		best, ok := a.bestNear(cands, t)
		if !ok {
			return Slot{}, "", ReasonNoMatchingEnergySlot
		}
		return best.slot, downgradeNote(t, a.model, best.slot), ""
	case task.FlexFlexible:
		best := cands[0]
		for _, c := range cands[1:] {
			if c.mismatch < best.mismatch {
				best = c
			}
		}
		return best.slot, downgradeNote(t, a.model, best.slot), ""
	}
	return Slot{}, "", ReasonNoMatchingEnergySlot
}

// candidates enumerates feasible placements in time order. Starts are the
// beginning of each free interval plus every hour boundary inside it; energy
// levels only change on the hour, so nothing between boundaries can differ.
func (a *Allocator) candidates(free []interval, t *task.Task) []candidate {
	dur := time.Duration(t.Duration) * time.Minute
	var cands []candidate
	for _, iv := range free {
		for _, start := range startsIn(iv) {
			end := start.Add(dur)
			if end.After(iv.end) {
				continue
			}
			cands = append(cands, candidate{
				slot:     Slot{Start: start, End: end},
				mismatch: a.mismatch(t.Energy, start, end),
			})
		}
	}
	return cands
}

// bestNear picks the least-mismatched candidate whose start lies within the
// allowed drift of an hour carrying the exact required level.
func (a *Allocator) bestNear(cands []candidate, t *task.Task) (candidate, bool) {
	var best candidate
	found := false
	for _, c := range cands {
		if !a.nearMatchingHour(t.Energy, c.slot.Start) {
			continue
		}
		if !found || c.mismatch < best.mismatch {
			best = c
			found = true
		}
	}
	return best, found
}

func (a *Allocator) nearMatchingHour(level task.EnergyLevel, start time.Time) bool {
	for off := -semiFlexDrift; off <= semiFlexDrift; off += time.Hour {
		if a.model.At(start.Add(off).Hour()) == level {
			return true
		}
	}
	return false
}

// mismatch sums, over each hour the slot touches, the ordinal distance
// between the hour's energy level and the required one. Zero means the whole
// slot sits in windows of the exact level.
func (a *Allocator) mismatch(level task.EnergyLevel, start, end time.Time) int {
	total := 0
	for h := start.Truncate(time.Hour); h.Before(end); h = h.Add(time.Hour) {
		d := a.model.At(h.Hour()).Ordinal() - level.Ordinal()
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// startsIn returns the interval start plus every hour boundary strictly
// inside the interval, ascending.
func startsIn(iv interval) []time.Time {
	starts := []time.Time{iv.start}
	h := iv.start.Truncate(time.Hour).Add(time.Hour)
	for ; h.Before(iv.end); h = h.Add(time.Hour) {
		starts = append(starts, h)
	}
	return starts
}

func downgradeNote(t *task.Task, m *energy.Model, s Slot) string {
	got := m.At(s.Start.Hour())
	return fmt.Sprintf("energy fallback: wanted %s, placed in %s window", t.Energy, got)
}

// subtract removes a reserved span from the free list, splitting intervals
// as needed. Spans outside the window are clipped away naturally.
func subtract(free []interval, s Slot) []interval {
	var out []interval
	for _, iv := range free {
		if !s.Start.Before(iv.end) || !iv.start.Before(s.End) {
			out = append(out, iv)
			continue
		}
		if iv.start.Before(s.Start) {
			out = append(out, interval{iv.start, s.Start})
		}
		if s.End.Before(iv.end) {
			out = append(out, interval{s.End, iv.end})
		}
	}
	return out
}

func freeMinutes(free []interval) int {
	total := 0
	for _, iv := range free {
		total += iv.minutes()
	}
	return total
}

func shortestDuration(rest []priority.Ranked) int {
	shortest := 0
	for _, r := range rest {
		if shortest == 0 || r.Task.Duration < shortest {
			shortest = r.Task.Duration
		}
	}
	return shortest
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slot.Start.Before(entries[j].Slot.Start)
	})
}
