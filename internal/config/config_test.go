package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/config"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.Chronotype != "intermediate" {
		t.Errorf("chronotype = %q, want intermediate", cfg.Schedule.Chronotype)
	}
	if cfg.Schedule.WorkStart != 8 || cfg.Schedule.WorkEnd != 18 {
		t.Errorf("working hours = %d-%d, want 8-18", cfg.Schedule.WorkStart, cfg.Schedule.WorkEnd)
	}
	if cfg.AI.Enabled {
		t.Error("AI should be disabled by default")
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should be enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[schedule]
chronotype = "night_owl"
work_start = 10
work_end = 20
break_minutes = 30
max_tasks = 5

[weights]
urgency = 0.25
importance = 0.25
effort = 0.25
wellbeing = 0.25
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.Chronotype != "night_owl" {
		t.Errorf("chronotype = %q", cfg.Schedule.Chronotype)
	}
	if cfg.Schedule.WorkStart != 10 || cfg.Schedule.WorkEnd != 20 {
		t.Errorf("working hours = %d-%d, want 10-20", cfg.Schedule.WorkStart, cfg.Schedule.WorkEnd)
	}
	if cfg.Schedule.MaxTasks != 5 {
		t.Errorf("max_tasks = %d, want 5", cfg.Schedule.MaxTasks)
	}
	if cfg.Weights.Urgency != 0.25 {
		t.Errorf("urgency weight = %g, want 0.25", cfg.Weights.Urgency)
	}
	// Sections not present keep their defaults.
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("ai model = %q, want the default", cfg.AI.Model)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TIMEBOX_CHRONOTYPE", "early_bird")
	t.Setenv("TIMEBOX_WORK_START", "6")
	t.Setenv("TIMEBOX_WORK_END", "15")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.Chronotype != "early_bird" {
		t.Errorf("chronotype = %q, want env override", cfg.Schedule.Chronotype)
	}
	if cfg.Schedule.WorkStart != 6 || cfg.Schedule.WorkEnd != 15 {
		t.Errorf("working hours = %d-%d, want 6-15", cfg.Schedule.WorkStart, cfg.Schedule.WorkEnd)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Error("OPENAI_API_KEY should populate the AI key")
	}
}

func TestLoadFromRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"weights off balance", "[weights]\nurgency = 0.9\nimportance = 0.9\neffort = 0.1\nwellbeing = 0.1\n"},
		{"end before start", "[schedule]\nwork_start = 18\nwork_end = 9\n"},
		{"negative break", "[schedule]\nbreak_minutes = -5\n"},
		{"malformed toml", "[schedule\nchronotype = ???\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.toml), 0644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, err := config.LoadFrom(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom on the seeded file: %v", err)
	}
	if *cfg != config.DefaultConfig() {
		t.Errorf("seeded config %+v differs from defaults", cfg)
	}
}
