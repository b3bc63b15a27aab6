package schedule_test

import (
	"math"
	"testing"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/schedule"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

func TestAnalyze(t *testing.T) {
	now := at(12, 0)

	overdue := mustTask(t, "late deliverable", 90,
		task.WithDeadline(now.Add(-2*time.Hour)),
		task.WithEnergy(task.EnergyHigh),
		task.WithPriority(task.PriorityHigh),
		task.WithEffort(7),
	)
	open := mustTask(t, "weekly review", 30,
		task.WithEnergy(task.EnergyLow),
		task.WithPriority(task.PriorityLow),
		task.WithEffort(3),
	)
	done := mustTask(t, "shipped already", 60, task.WithStatus(task.StatusCompleted))
	dropped := mustTask(t, "abandoned idea", 45, task.WithStatus(task.StatusCancelled))

	a := schedule.Analyze([]*task.Task{overdue, open, done, dropped}, now)

	if a.TotalTasks != 4 {
		t.Errorf("total = %d, want 4", a.TotalTasks)
	}
	if a.CompletedTasks != 1 {
		t.Errorf("completed = %d, want 1", a.CompletedTasks)
	}
	// Cancelled tasks still count toward the open load.
	if a.IncompleteTasks != 3 {
		t.Errorf("incomplete = %d, want 3", a.IncompleteTasks)
	}

	wantHours := float64(90+30+45) / 60.0
	if math.Abs(a.TotalDurationHours-wantHours) > 1e-9 {
		t.Errorf("open duration = %g hours, want %g", a.TotalDurationHours, wantHours)
	}
	wantEffort := float64(7+3+5) / 3.0
	if math.Abs(a.AverageEffort-wantEffort) > 1e-9 {
		t.Errorf("average effort = %g, want %g", a.AverageEffort, wantEffort)
	}

	if a.OverdueTasks != 1 {
		t.Errorf("overdue = %d, want 1", a.OverdueTasks)
	}
	if len(a.OverdueTitles) != 1 || a.OverdueTitles[0] != "late deliverable" {
		t.Errorf("overdue titles = %v", a.OverdueTitles)
	}

	if a.EnergyDistribution[task.EnergyHigh] != 1 ||
		a.EnergyDistribution[task.EnergyLow] != 1 ||
		a.EnergyDistribution[task.EnergyMedium] != 1 {
		t.Errorf("energy distribution = %v", a.EnergyDistribution)
	}
	if a.PriorityDistribution[task.PriorityHigh] != 1 ||
		a.PriorityDistribution[task.PriorityLow] != 1 ||
		a.PriorityDistribution[task.PriorityMedium] != 1 {
		t.Errorf("priority distribution = %v", a.PriorityDistribution)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := schedule.Analyze(nil, at(12, 0))
	if a.TotalTasks != 0 || a.IncompleteTasks != 0 {
		t.Errorf("empty snapshot should produce zero counts, got %+v", a)
	}
	if a.AverageEffort != 0 {
		t.Errorf("average effort = %g, want 0 without division", a.AverageEffort)
	}
}
