// Package reminder runs a generated plan in the foreground and raises a
// desktop notification at each slot boundary so the user keeps pace with
// their timeboxes.
package reminder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/config"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/schedule"
)

type Runner struct {
	cfg  *config.Config
	plan *schedule.Plan
}

func New(cfg *config.Config, plan *schedule.Plan) *Runner {
	return &Runner{cfg: cfg, plan: plan}
}

// Run sleeps through the plan, notifying when each slot starts and when the
// day's last slot ends. Returns when the plan is exhausted or the context
// is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.writePID(); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer r.removePID()

	fmt.Printf("Following plan for %s (%d slots)\n", r.plan.Date, len(r.plan.Entries))

	for _, entry := range r.plan.Entries {
		if !entry.Slot.Start.After(time.Now()) {
			continue // already past
		}
		fmt.Printf("Next: %s at %s\n", entry.Title, entry.Slot.Start.Format("15:04"))

		select {
		case <-ctx.Done():
			fmt.Println("\nReminder runner stopped.")
			return nil
		case <-time.After(time.Until(entry.Slot.Start)):
		}

		r.notify("timebox", fmt.Sprintf("Now: %s (until %s)",
			entry.Title, entry.Slot.End.Format("15:04")))
	}

	if n := len(r.plan.Entries); n > 0 {
		last := r.plan.Entries[n-1].Slot.End
		if last.After(time.Now()) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Until(last)):
			}
			r.notify("timebox", "Plan complete for today")
		}
	}

	return nil
}

func (r *Runner) notify(title, message string) {
	if !r.cfg.Notifications.Enabled {
		return
	}
	if err := beeep.Notify(title, message, ""); err != nil {
		fmt.Printf("Notification failed: %v\n", err)
	}
}

func pidPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "timebox.pid"), nil
}

func (r *Runner) writePID() error {
	path, err := pidPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func (r *Runner) removePID() {
	if path, err := pidPath(); err == nil {
		os.Remove(path)
	}
}

// ReadPID returns the PID of a running reminder process, if any.
func ReadPID() (int, error) {
	path, err := pidPath()
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("no running timebox reminder found")
	}

	pid, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("invalid PID file")
	}

	return pid, nil
}
