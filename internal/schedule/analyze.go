package schedule

import (
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

// Analysis summarizes a task snapshot without any allocation logic.
type Analysis struct {
	TotalTasks           int                      `json:"total_tasks"`
	IncompleteTasks      int                      `json:"incomplete_tasks"`
	CompletedTasks       int                      `json:"completed_tasks"`
	TotalDurationHours   float64                  `json:"total_duration_hours"`
	AverageEffort        float64                  `json:"average_effort"`
	OverdueTasks         int                      `json:"overdue_tasks"`
	OverdueTitles        []string                 `json:"overdue_titles,omitempty"`
	EnergyDistribution   map[task.EnergyLevel]int `json:"energy_distribution"`
	PriorityDistribution map[task.Priority]int    `json:"priority_distribution"`
}

// Analyze aggregates the incomplete portion of the snapshot: total open
// duration, average effort, overdue count, and how the load spreads across
// energy levels and priority bands.
func Analyze(tasks []*task.Task, now time.Time) Analysis {
	a := Analysis{
		TotalTasks:           len(tasks),
		EnergyDistribution:   map[task.EnergyLevel]int{task.EnergyLow: 0, task.EnergyMedium: 0, task.EnergyHigh: 0},
		PriorityDistribution: map[task.Priority]int{task.PriorityLow: 0, task.PriorityMedium: 0, task.PriorityHigh: 0, task.PriorityCritical: 0},
	}

	totalMinutes := 0
	totalEffort := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			a.CompletedTasks++
			continue
		}
		a.IncompleteTasks++
		totalMinutes += t.Duration
		totalEffort += t.Effort
		a.EnergyDistribution[t.Energy]++
		a.PriorityDistribution[t.Priority]++
		if t.Overdue(now) {
			a.OverdueTasks++
			a.OverdueTitles = append(a.OverdueTitles, t.Title)
		}
	}

	a.TotalDurationHours = float64(totalMinutes) / 60.0
	if a.IncompleteTasks > 0 {
		a.AverageEffort = float64(totalEffort) / float64(a.IncompleteTasks)
	}
	return a
}
