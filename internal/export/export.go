// Package export renders a generated plan for consumption outside the tool:
// JSON for machines, a plain-text table for terminals, and iCalendar for
// calendar apps.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/schedule"
)

// Format selects an output renderer.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatICS  Format = "ics"
)

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	case FormatICS:
		return FormatICS, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, text or ics)", s)
}

// Render serializes the plan in the requested format.
func Render(plan *schedule.Plan, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return renderJSON(plan)
	case FormatText:
		return []byte(renderText(plan)), nil
	case FormatICS:
		return renderICS(plan)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// jsonEntry is the stable serialized shape: identifier, title, ISO-8601
// start/end, and the rationale.
type jsonEntry struct {
	TaskID    string `json:"task_id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Rationale string `json:"rationale"`
}

type jsonPlan struct {
	Date        string              `json:"date"`
	Chronotype  string              `json:"chronotype"`
	Entries     []jsonEntry         `json:"entries"`
	Unplaced    []schedule.Unplaced `json:"unplaced,omitempty"`
	Utilization float64             `json:"utilization"`
}

func renderJSON(plan *schedule.Plan) ([]byte, error) {
	out := jsonPlan{
		Date:        plan.Date,
		Chronotype:  string(plan.Chronotype),
		Entries:     make([]jsonEntry, 0, len(plan.Entries)),
		Unplaced:    plan.Unplaced,
		Utilization: plan.Utilization,
	}
	for _, e := range plan.Entries {
		out.Entries = append(out.Entries, jsonEntry{
			TaskID:    e.TaskID,
			Title:     e.Title,
			Start:     e.Slot.Start.Format(time.RFC3339),
			End:       e.Slot.End.Format(time.RFC3339),
			Rationale: e.Rationale,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling plan: %w", err)
	}
	return data, nil
}

func renderText(plan *schedule.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Daily plan for %s (%s)\n", plan.Date, plan.Chronotype)
	fmt.Fprintf(&b, "Window: %s–%s  Utilization: %.1f%%\n\n",
		plan.WindowStart.Format("15:04"),
		plan.WindowEnd.Format("15:04"),
		plan.Utilization*100,
	)

	if len(plan.Entries) == 0 {
		b.WriteString("No tasks scheduled.\n")
	}
	for _, e := range plan.Entries {
		fmt.Fprintf(&b, "  %s–%s  %3dmin  %-30s  %s\n",
			e.Slot.Start.Format("15:04"),
			e.Slot.End.Format("15:04"),
			e.Slot.Minutes(),
			e.Title,
			e.Rationale,
		)
	}

	if len(plan.Unplaced) > 0 {
		b.WriteString("\nUnplaced:\n")
		for _, u := range plan.Unplaced {
			fmt.Fprintf(&b, "  %-30s  %s\n", u.Title, u.Reason)
		}
	}

	return b.String()
}

func renderICS(plan *schedule.Plan) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//timebox//daily plan//EN")

	for _, e := range plan.Entries {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, e.TaskID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, plan.GeneratedAt)
		event.Props.SetDateTime(ical.PropDateTimeStart, e.Slot.Start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, e.Slot.End)
		event.Props.SetText(ical.PropSummary, e.Title)
		event.Props.SetText(ical.PropDescription, e.Rationale)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encoding calendar: %w", err)
	}
	return buf.Bytes(), nil
}
