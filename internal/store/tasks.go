package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

func (db *DB) InsertTask(t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	var deadline sql.NullString
	if t.Deadline != nil {
		deadline = sql.NullString{String: t.Deadline.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := db.Exec(
		`INSERT INTO tasks (id, title, description, duration, priority, deadline, dependencies,
			energy, location, participants, mode, effort, flexibility, status, reward, tools, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Duration, string(t.Priority), deadline,
		marshalList(t.Dependencies), string(t.Energy), t.Location, marshalList(t.Participants),
		string(t.Mode), t.Effort, string(t.Flexibility), string(t.Status), t.Reward,
		marshalList(t.Tools), t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// ListTasks returns the full snapshot ordered by creation time, which keeps
// plan generation deterministic across calls.
func (db *DB) ListTasks() ([]*task.Task, error) {
	return db.queryTasks(
		`SELECT id, title, description, duration, priority, deadline, dependencies,
			energy, location, participants, mode, effort, flexibility, status, reward, tools, created_at
		 FROM tasks
		 ORDER BY created_at ASC, id ASC`,
	)
}

// GetTask looks a task up by its full ID or a unique prefix.
func (db *DB) GetTask(idOrPrefix string) (*task.Task, error) {
	tasks, err := db.queryTasks(
		`SELECT id, title, description, duration, priority, deadline, dependencies,
			energy, location, participants, mode, effort, flexibility, status, reward, tools, created_at
		 FROM tasks
		 WHERE id = ? OR id LIKE ?
		 ORDER BY created_at ASC`,
		idOrPrefix, idOrPrefix+"%",
	)
	if err != nil {
		return nil, err
	}
	switch len(tasks) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", idOrPrefix)
	case 1:
		return tasks[0], nil
	default:
		return nil, fmt.Errorf("%d tasks match %q, use a longer prefix", len(tasks), idOrPrefix)
	}
}

// UpdateStatus records a caller-side status mutation.
func (db *DB) UpdateStatus(id string, status task.Status) error {
	res, err := db.Exec("UPDATE tasks SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no task with id %q", id)
	}
	return nil
}

func (db *DB) DeleteTask(id string) error {
	_, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (db *DB) queryTasks(query string, args ...interface{}) ([]*task.Task, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		var t task.Task
		var deadline sql.NullString
		var deps, participants, tools, createdStr string
		var prio, energyStr, mode, flex, status string

		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Duration, &prio, &deadline, &deps,
			&energyStr, &t.Location, &participants, &mode, &t.Effort, &flex, &status,
			&t.Reward, &tools, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		t.Priority = task.Priority(prio)
		t.Energy = task.EnergyLevel(energyStr)
		t.Mode = task.Mode(mode)
		t.Flexibility = task.Flexibility(flex)
		t.Status = task.Status(status)
		t.Dependencies = unmarshalList(deps)
		t.Participants = unmarshalList(participants)
		t.Tools = unmarshalList(tools)

		if deadline.Valid && deadline.String != "" {
			if d, err := time.Parse(time.RFC3339, deadline.String); err == nil {
				t.Deadline = &d
			}
		}
		if c, err := time.Parse(time.RFC3339, createdStr); err == nil {
			t.CreatedAt = c
		}

		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

func marshalList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func unmarshalList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil
	}
	return items
}
