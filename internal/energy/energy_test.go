package energy_test

import (
	"testing"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/energy"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

func TestParseChronotype(t *testing.T) {
	tests := []struct {
		in      string
		want    energy.Chronotype
		wantErr bool
	}{
		{"early_bird", energy.EarlyBird, false},
		{"INTERMEDIATE", energy.Intermediate, false},
		{"night_owl", energy.NightOwl, false},
		{"lark", "", true},
	}
	for _, tt := range tests {
		got, err := energy.ParseChronotype(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseChronotype(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChronotype(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAt(t *testing.T) {
	tests := []struct {
		chronotype energy.Chronotype
		hour       int
		want       task.EnergyLevel
	}{
		{energy.EarlyBird, 6, task.EnergyHigh},
		{energy.EarlyBird, 11, task.EnergyHigh},
		{energy.EarlyBird, 12, task.EnergyMedium},
		{energy.EarlyBird, 17, task.EnergyLow},
		{energy.EarlyBird, 3, task.EnergyLow},
		{energy.Intermediate, 9, task.EnergyHigh},
		{energy.Intermediate, 16, task.EnergyHigh},
		{energy.Intermediate, 17, task.EnergyMedium},
		{energy.Intermediate, 23, task.EnergyLow},
		{energy.Intermediate, 8, task.EnergyLow},
		{energy.NightOwl, 10, task.EnergyMedium},
		{energy.NightOwl, 14, task.EnergyHigh},
		{energy.NightOwl, 21, task.EnergyHigh},
		{energy.NightOwl, 22, task.EnergyLow},
		{energy.NightOwl, 2, task.EnergyLow},
	}
	for _, tt := range tests {
		m, err := energy.For(tt.chronotype)
		if err != nil {
			t.Fatalf("For(%s) failed: %v", tt.chronotype, err)
		}
		if got := m.At(tt.hour); got != tt.want {
			t.Errorf("%s.At(%d) = %s, want %s", tt.chronotype, tt.hour, got, tt.want)
		}
	}
}

func TestAtNormalizesHour(t *testing.T) {
	m, _ := energy.For(energy.Intermediate)
	if m.At(33) != m.At(9) {
		t.Error("hours past 24 should wrap onto the same day")
	}
	if m.At(-1) != m.At(23) {
		t.Error("negative hours should wrap from the previous day")
	}
}

func TestWindowContainsWrap(t *testing.T) {
	w := energy.Window{Start: 22, End: 9, Level: task.EnergyLow}
	for _, h := range []int{22, 23, 0, 5, 8} {
		if !w.Contains(h) {
			t.Errorf("wrapped window should contain hour %d", h)
		}
	}
	for _, h := range []int{9, 12, 21} {
		if w.Contains(h) {
			t.Errorf("wrapped window should not contain hour %d", h)
		}
	}
}

func TestForUnknownChronotype(t *testing.T) {
	if _, err := energy.For(energy.Chronotype("owl_bird")); err == nil {
		t.Error("expected error for unknown chronotype")
	}
}

func TestCustomValidation(t *testing.T) {
	tests := []struct {
		name    string
		windows []energy.Window
		wantErr bool
	}{
		{
			name: "valid full coverage",
			windows: []energy.Window{
				{Start: 0, End: 8, Level: task.EnergyLow},
				{Start: 8, End: 16, Level: task.EnergyHigh},
				{Start: 16, End: 0, Level: task.EnergyMedium},
			},
		},
		{
			name: "gap at hour 16",
			windows: []energy.Window{
				{Start: 0, End: 16, Level: task.EnergyLow},
				{Start: 17, End: 0, Level: task.EnergyMedium},
			},
			wantErr: true,
		},
		{
			name: "overlapping windows",
			windows: []energy.Window{
				{Start: 0, End: 12, Level: task.EnergyLow},
				{Start: 11, End: 0, Level: task.EnergyMedium},
			},
			wantErr: true,
		},
		{
			name: "unknown level",
			windows: []energy.Window{
				{Start: 0, End: 0, Level: task.EnergyLevel("peak")},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := energy.Custom(energy.Intermediate, tt.windows)
			if (err != nil) != tt.wantErr {
				t.Errorf("Custom error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHoursMatching(t *testing.T) {
	m, _ := energy.For(energy.EarlyBird)

	high := m.HoursMatching(task.EnergyHigh, 8, 18)
	want := []int{8, 9, 10, 11}
	if len(high) != len(want) {
		t.Fatalf("HoursMatching(high, 8, 18) = %v, want %v", high, want)
	}
	for i := range want {
		if high[i] != want[i] {
			t.Fatalf("HoursMatching(high, 8, 18) = %v, want %v", high, want)
		}
	}

	low := m.HoursMatching(task.EnergyLow, 8, 18)
	if len(low) != 1 || low[0] != 17 {
		t.Errorf("HoursMatching(low, 8, 18) = %v, want [17]", low)
	}
}

func TestReport(t *testing.T) {
	m, _ := energy.For(energy.EarlyBird)
	blocks := m.Report()

	want := []energy.Block{
		{Start: "00:00", End: "06:00", Level: task.EnergyLow},
		{Start: "06:00", End: "12:00", Level: task.EnergyHigh},
		{Start: "12:00", End: "17:00", Level: task.EnergyMedium},
		{Start: "17:00", End: "24:00", Level: task.EnergyLow},
	}
	if len(blocks) != len(want) {
		t.Fatalf("Report() returned %d blocks, want %d: %+v", len(blocks), len(want), blocks)
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Errorf("block[%d] = %+v, want %+v", i, b, want[i])
		}
	}
}
