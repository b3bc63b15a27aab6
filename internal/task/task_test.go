package task_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

func TestNewDefaults(t *testing.T) {
	tk, err := task.New("Write report", 60)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tk.ID == "" {
		t.Error("expected a generated ID")
	}
	if tk.Priority != task.PriorityMedium {
		t.Errorf("default priority = %q, want medium", tk.Priority)
	}
	if tk.Energy != task.EnergyMedium {
		t.Errorf("default energy = %q, want medium", tk.Energy)
	}
	if tk.Status != task.StatusNotStarted {
		t.Errorf("default status = %q, want not_started", tk.Status)
	}
	if tk.Flexibility != task.FlexFlexible {
		t.Errorf("default flexibility = %q, want flexible", tk.Flexibility)
	}
	if tk.Effort != 5 || tk.Reward != 5 {
		t.Errorf("default effort/reward = %d/%d, want 5/5", tk.Effort, tk.Reward)
	}
}

func TestNewOptions(t *testing.T) {
	deadline := time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)
	tk, err := task.New("Prep demo", 90,
		task.WithDescription("walkthrough for the client call"),
		task.WithPriority(task.PriorityCritical),
		task.WithDeadline(deadline),
		task.WithEnergy(task.EnergyHigh),
		task.WithEffort(8),
		task.WithReward(9),
		task.WithFlexibility(task.FlexRigid),
		task.WithLocation("office"),
		task.WithDependencies("dep-1", "dep-2"),
		task.WithTools("laptop"),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tk.Deadline == nil || !tk.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", tk.Deadline, deadline)
	}
	if len(tk.Dependencies) != 2 {
		t.Errorf("dependencies = %v, want two entries", tk.Dependencies)
	}
	if tk.Flexibility != task.FlexRigid {
		t.Errorf("flexibility = %q, want rigid", tk.Flexibility)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*task.Task)
		wantField string
	}{
		{"empty title", func(tk *task.Task) { tk.Title = "  " }, "title"},
		{"zero duration", func(tk *task.Task) { tk.Duration = 0 }, "duration"},
		{"negative duration", func(tk *task.Task) { tk.Duration = -30 }, "duration"},
		{"effort too low", func(tk *task.Task) { tk.Effort = 0 }, "effort"},
		{"effort too high", func(tk *task.Task) { tk.Effort = 11 }, "effort"},
		{"reward too low", func(tk *task.Task) { tk.Reward = 0 }, "reward"},
		{"reward too high", func(tk *task.Task) { tk.Reward = 11 }, "reward"},
		{"bad priority", func(tk *task.Task) { tk.Priority = "urgent" }, "priority"},
		{"bad energy", func(tk *task.Task) { tk.Energy = "max" }, "energy"},
		{"bad mode", func(tk *task.Task) { tk.Mode = "remote" }, "mode"},
		{"bad flexibility", func(tk *task.Task) { tk.Flexibility = "sometimes" }, "flexibility"},
		{"bad status", func(tk *task.Task) { tk.Status = "paused" }, "status"},
		{"self dependency", func(tk *task.Task) { tk.Dependencies = []string{tk.ID} }, "dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := task.New("base", 30)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			tt.mutate(tk)

			err = tk.Validate()
			var verr *task.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overdue, _ := task.New("late", 30, task.WithDeadline(past))
	upcoming, _ := task.New("soon", 30, task.WithDeadline(future))
	open, _ := task.New("whenever", 30)

	if !overdue.Overdue(now) {
		t.Error("task with past deadline should be overdue")
	}
	if upcoming.Overdue(now) {
		t.Error("task with future deadline should not be overdue")
	}
	if open.Overdue(now) {
		t.Error("task without deadline should never be overdue")
	}
}

func TestEnergyOrdinal(t *testing.T) {
	if task.EnergyLow.Ordinal() >= task.EnergyMedium.Ordinal() ||
		task.EnergyMedium.Ordinal() >= task.EnergyHigh.Ordinal() {
		t.Error("energy ordinals must be strictly increasing low < medium < high")
	}
	if task.EnergyLevel("bogus").Ordinal() != -1 {
		t.Error("unknown level should report ordinal -1")
	}
}

func TestPriorityWeight(t *testing.T) {
	order := []task.Priority{task.PriorityLow, task.PriorityMedium, task.PriorityHigh, task.PriorityCritical}
	for i := 1; i < len(order); i++ {
		if order[i-1].Weight() >= order[i].Weight() {
			t.Errorf("weight of %s (%g) should be below %s (%g)",
				order[i-1], order[i-1].Weight(), order[i], order[i].Weight())
		}
	}
	if task.PriorityCritical.Weight() != 1.0 {
		t.Errorf("critical weight = %g, want 1.0", task.PriorityCritical.Weight())
	}
}

func TestSchedulable(t *testing.T) {
	tests := []struct {
		status task.Status
		want   bool
	}{
		{task.StatusNotStarted, true},
		{task.StatusInProgress, true},
		{task.StatusBlocked, true},
		{task.StatusCompleted, false},
		{task.StatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.status.Schedulable(); got != tt.want {
			t.Errorf("Schedulable(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParsers(t *testing.T) {
	if p, err := task.ParsePriority("HIGH"); err != nil || p != task.PriorityHigh {
		t.Errorf("ParsePriority(HIGH) = %v, %v", p, err)
	}
	if _, err := task.ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority should reject unknown values")
	}
	if e, err := task.ParseEnergyLevel("Low"); err != nil || e != task.EnergyLow {
		t.Errorf("ParseEnergyLevel(Low) = %v, %v", e, err)
	}
	if f, err := task.ParseFlexibility("semi_flexible"); err != nil || f != task.FlexSemiFlexible {
		t.Errorf("ParseFlexibility = %v, %v", f, err)
	}
	if m, err := task.ParseMode("async"); err != nil || m != task.ModeAsync {
		t.Errorf("ParseMode = %v, %v", m, err)
	}
	if s, err := task.ParseStatus("in_progress"); err != nil || s != task.StatusInProgress {
		t.Errorf("ParseStatus = %v, %v", s, err)
	}
}
