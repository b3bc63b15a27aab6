// Package energy maps chronotypes onto daily energy curves. The tables are
// fixed data; callers that want different hour ranges supply their own
// windows via Custom.
package energy

import (
	"fmt"
	"strings"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

// Chronotype is a user's natural energy-rhythm category.
type Chronotype string

const (
	EarlyBird    Chronotype = "early_bird"
	Intermediate Chronotype = "intermediate"
	NightOwl     Chronotype = "night_owl"
)

// ParseChronotype converts user input into a Chronotype.
func ParseChronotype(s string) (Chronotype, error) {
	switch Chronotype(strings.ToLower(s)) {
	case EarlyBird:
		return EarlyBird, nil
	case Intermediate:
		return Intermediate, nil
	case NightOwl:
		return NightOwl, nil
	}
	return "", fmt.Errorf("unknown chronotype %q (want early_bird, intermediate or night_owl)", s)
}

// Window is a contiguous span of hours carrying one energy level.
// End may be smaller than Start for a window that wraps past midnight;
// [Start, End) is half-open in either case.
type Window struct {
	Start int // hour, 0-23
	End   int // hour, 1-24 or wrapped
	Level task.EnergyLevel
}

// Contains reports whether the given hour falls inside the window.
func (w Window) Contains(hour int) bool {
	if w.Start < w.End {
		return hour >= w.Start && hour < w.End
	}
	return hour >= w.Start || hour < w.End
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:00-%02d:00 %s", w.Start, w.End%24, w.Level)
}

// Model answers energy-level questions for one chronotype. Zero value is not
// usable; construct with For or Custom.
type Model struct {
	chronotype Chronotype
	windows    []Window
}

// Three windows per chronotype, non-overlapping, union covering 24 hours.
var defaultWindows = map[Chronotype][]Window{
	EarlyBird: {
		{Start: 6, End: 12, Level: task.EnergyHigh},
		{Start: 12, End: 17, Level: task.EnergyMedium},
		{Start: 17, End: 6, Level: task.EnergyLow},
	},
	Intermediate: {
		{Start: 9, End: 17, Level: task.EnergyHigh},
		{Start: 17, End: 22, Level: task.EnergyMedium},
		{Start: 22, End: 9, Level: task.EnergyLow},
	},
	NightOwl: {
		{Start: 9, End: 14, Level: task.EnergyMedium},
		{Start: 14, End: 22, Level: task.EnergyHigh},
		{Start: 22, End: 9, Level: task.EnergyLow},
	},
}

// For returns the model backed by the built-in table for the chronotype.
func For(c Chronotype) (*Model, error) {
	windows, ok := defaultWindows[c]
	if !ok {
		return nil, fmt.Errorf("unknown chronotype %q", c)
	}
	return &Model{chronotype: c, windows: windows}, nil
}

// Custom builds a model from caller-supplied windows. The windows must cover
// all 24 hours exactly once.
func Custom(c Chronotype, windows []Window) (*Model, error) {
	covered := make([]bool, 24)
	for _, w := range windows {
		if w.Level.Ordinal() < 0 {
			return nil, fmt.Errorf("window %s: unknown energy level", w)
		}
		for h := 0; h < 24; h++ {
			if w.Contains(h) {
				if covered[h] {
					return nil, fmt.Errorf("hour %d covered by more than one window", h)
				}
				covered[h] = true
			}
		}
	}
	for h, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("hour %d not covered by any window", h)
		}
	}
	return &Model{chronotype: c, windows: windows}, nil
}

// Chronotype returns the chronotype the model was built for.
func (m *Model) Chronotype() Chronotype { return m.chronotype }

// Windows returns the model's windows in table order.
func (m *Model) Windows() []Window { return m.windows }

// At returns the energy level available at the given hour of day.
func (m *Model) At(hour int) task.EnergyLevel {
	h := ((hour % 24) + 24) % 24
	for _, w := range m.windows {
		if w.Contains(h) {
			return w.Level
		}
	}
	// unreachable for validated models
	return task.EnergyLow
}

// HoursMatching returns the hours in [startHour, endHour) whose energy level
// equals the requested one, in ascending order.
func (m *Model) HoursMatching(level task.EnergyLevel, startHour, endHour int) []int {
	var hours []int
	for h := startHour; h < endHour; h++ {
		if m.At(h) == level {
			hours = append(hours, h)
		}
	}
	return hours
}

// Block is a contiguous run of hours at one level, for human-readable reports.
type Block struct {
	Start string // "HH:00"
	End   string // "HH:00" or "24:00"
	Level task.EnergyLevel
}

// Report walks the day hour by hour and returns the contiguous energy blocks.
func (m *Model) Report() []Block {
	var blocks []Block
	var current task.EnergyLevel
	start := 0
	for h := 0; h < 24; h++ {
		level := m.At(h)
		if h == 0 {
			current = level
			continue
		}
		if level != current {
			blocks = append(blocks, Block{
				Start: fmt.Sprintf("%02d:00", start),
				End:   fmt.Sprintf("%02d:00", h),
				Level: current,
			})
			current = level
			start = h
		}
	}
	blocks = append(blocks, Block{
		Start: fmt.Sprintf("%02d:00", start),
		End:   "24:00",
		Level: current,
	})
	return blocks
}
