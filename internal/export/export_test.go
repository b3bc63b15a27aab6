package export_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/energy"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/export"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/schedule"
)

func fixturePlan() *schedule.Plan {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &schedule.Plan{
		Date:        "2026-03-02",
		Chronotype:  energy.Intermediate,
		WindowStart: start.Add(-time.Hour),
		WindowEnd:   start.Add(9 * time.Hour),
		Entries: []schedule.Entry{
			{
				TaskID:    "task-1",
				Title:     "deep work",
				Slot:      schedule.Slot{Start: start, End: start.Add(2 * time.Hour)},
				Rationale: "high importance",
			},
			{
				TaskID:    "task-2",
				Title:     "email sweep",
				Slot:      schedule.Slot{Start: start.Add(3 * time.Hour), End: start.Add(3*time.Hour + 30*time.Minute)},
				Rationale: "low effort",
			},
		},
		Unplaced: []schedule.Unplaced{
			{TaskID: "task-3", Title: "blocked thing", Reason: schedule.ReasonBlockedByDependency},
		},
		ScheduledMinutes: 150,
		AvailableMinutes: 600,
		Utilization:      0.25,
		GeneratedAt:      start.Add(-2 * time.Hour),
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "TEXT", "ics"} {
		if _, err := export.ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
	}
	if _, err := export.ParseFormat("xml"); err == nil {
		t.Error("ParseFormat should reject unknown formats")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := export.Render(fixturePlan(), export.FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var out struct {
		Date       string `json:"date"`
		Chronotype string `json:"chronotype"`
		Entries    []struct {
			TaskID    string `json:"task_id"`
			Title     string `json:"title"`
			Start     string `json:"start"`
			End       string `json:"end"`
			Rationale string `json:"rationale"`
		} `json:"entries"`
		Unplaced []struct {
			Reason string `json:"reason"`
		} `json:"unplaced"`
		Utilization float64 `json:"utilization"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Date != "2026-03-02" || out.Chronotype != "intermediate" {
		t.Errorf("header = %s/%s", out.Date, out.Chronotype)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(out.Entries))
	}
	if out.Entries[0].Start != "2026-03-02T09:00:00Z" {
		t.Errorf("start = %q, want RFC 3339", out.Entries[0].Start)
	}
	if out.Entries[0].Rationale != "high importance" {
		t.Errorf("rationale = %q", out.Entries[0].Rationale)
	}
	if len(out.Unplaced) != 1 || out.Unplaced[0].Reason != "blocked-by-dependency" {
		t.Errorf("unplaced = %+v", out.Unplaced)
	}
	if out.Utilization != 0.25 {
		t.Errorf("utilization = %g", out.Utilization)
	}
}

func TestRenderText(t *testing.T) {
	data, err := export.Render(fixturePlan(), export.FormatText)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"2026-03-02",
		"intermediate",
		"09:00–11:00",
		"deep work",
		"email sweep",
		"Unplaced:",
		"blocked-by-dependency",
		"25.0%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
}

func TestRenderTextEmptyPlan(t *testing.T) {
	plan := fixturePlan()
	plan.Entries = nil
	plan.Unplaced = nil

	data, err := export.Render(plan, export.FormatText)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(data), "No tasks scheduled.") {
		t.Errorf("empty plan output:\n%s", data)
	}
}

func TestRenderICS(t *testing.T) {
	data, err := export.Render(fixturePlan(), export.FormatICS)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	ics := string(data)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:task-1",
		"SUMMARY:deep work",
		"SUMMARY:email sweep",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("event count = %d, want 2", got)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := export.Render(fixturePlan(), export.Format("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
