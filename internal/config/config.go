package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/priority"
)

type Config struct {
	Schedule      ScheduleConfig   `toml:"schedule"`
	Weights       priority.Weights `toml:"weights"`
	AI            AIConfig         `toml:"ai"`
	Notifications NotifyConfig     `toml:"notifications"`
}

type ScheduleConfig struct {
	Chronotype   string `toml:"chronotype"` // early_bird | intermediate | night_owl
	WorkStart    int    `toml:"work_start"` // hour, 24h clock
	WorkEnd      int    `toml:"work_end"`
	BreakMinutes int    `toml:"break_minutes"`
	MaxTasks     int    `toml:"max_tasks"` // 0 = unlimited
}

type AIConfig struct {
	Enabled bool   `toml:"enabled"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
}

type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

func DefaultConfig() Config {
	return Config{
		Schedule: ScheduleConfig{
			Chronotype:   "intermediate",
			WorkStart:    8,
			WorkEnd:      18,
			BreakMinutes: 60,
		},
		Weights: priority.DefaultWeights(),
		AI: AIConfig{
			Enabled: false,
			Model:   "gpt-4o-mini",
		},
		Notifications: NotifyConfig{
			Enabled: true,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "timebox"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, falling back to defaults when it
// does not exist. Weight and working-hour validation happens here so the
// engines never see a bad configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Schedule.WorkStart < 0 || c.Schedule.WorkStart > 23 {
		return fmt.Errorf("work_start %d out of range 0..23", c.Schedule.WorkStart)
	}
	if c.Schedule.WorkEnd < 1 || c.Schedule.WorkEnd > 24 {
		return fmt.Errorf("work_end %d out of range 1..24", c.Schedule.WorkEnd)
	}
	if c.Schedule.WorkEnd <= c.Schedule.WorkStart {
		return fmt.Errorf("work_end %d must be after work_start %d", c.Schedule.WorkEnd, c.Schedule.WorkStart)
	}
	if c.Schedule.BreakMinutes < 0 {
		return fmt.Errorf("break_minutes must not be negative")
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TIMEBOX_CHRONOTYPE"); v != "" {
		cfg.Schedule.Chronotype = v
	}
	if v := os.Getenv("TIMEBOX_WORK_START"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.WorkStart = h
		}
	}
	if v := os.Getenv("TIMEBOX_WORK_END"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.WorkEnd = h
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// WriteDefault seeds the config file with the default settings so the user
// has something to edit.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data := fmt.Sprintf(`[schedule]
chronotype = "%s"
work_start = %d
work_end = %d
break_minutes = %d
max_tasks = %d

[weights]
urgency = %.2f
importance = %.2f
effort = %.2f
wellbeing = %.2f

[ai]
enabled = %t
model = "%s"
api_key = ""

[notifications]
enabled = %t
`,
		cfg.Schedule.Chronotype,
		cfg.Schedule.WorkStart,
		cfg.Schedule.WorkEnd,
		cfg.Schedule.BreakMinutes,
		cfg.Schedule.MaxTasks,
		cfg.Weights.Urgency,
		cfg.Weights.Importance,
		cfg.Weights.Effort,
		cfg.Weights.Wellbeing,
		cfg.AI.Enabled,
		cfg.AI.Model,
		cfg.Notifications.Enabled,
	)
	return os.WriteFile(path, []byte(data), 0644)
}
