package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
)

const pickerVisible = 15

type pickerModel struct {
	title    string
	tasks    []*task.Task
	filtered []int // indices into tasks
	selected map[int]bool
	cursor   int
	filter   textinput.Model
	multi    bool
	done     bool
	canceled bool
}

// PickerResult holds the tasks the user selected.
type PickerResult struct {
	TaskIDs  []string
	Canceled bool
}

// PickerApp wraps pickerModel for standalone use with tea.NewProgram.
type PickerApp struct {
	picker pickerModel
	result *PickerResult
}

// NewPickerApp builds a task picker. With multi false, the first selection
// confirms immediately.
func NewPickerApp(title string, tasks []*task.Task, multi bool) *PickerApp {
	return &PickerApp{
		picker: newPicker(title, tasks, multi),
	}
}

func (a *PickerApp) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *PickerApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.picker.Update(msg)
	a.picker = m.(pickerModel)

	if a.picker.done || a.picker.canceled {
		a.result = a.picker.Result()
		return a, tea.Quit
	}

	return a, cmd
}

func (a *PickerApp) View() string {
	return a.picker.View()
}

func (a *PickerApp) GetResult() *PickerResult {
	return a.result
}

func newPicker(title string, tasks []*task.Task, multi bool) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter tasks..."
	ti.Focus()

	filtered := make([]int, len(tasks))
	for i := range tasks {
		filtered[i] = i
	}

	return pickerModel{
		title:    title,
		tasks:    tasks,
		filtered: filtered,
		selected: make(map[int]bool),
		filter:   ti,
		multi:    multi,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, nil
		case "enter":
			if !m.multi && len(m.filtered) > 0 {
				m.selected[m.filtered[m.cursor]] = true
			}
			if len(m.selected) > 0 {
				m.done = true
			}
			return m, nil
		case " ":
			if m.multi && len(m.filtered) > 0 {
				idx := m.filtered[m.cursor]
				if m.selected[idx] {
					delete(m.selected, idx)
				} else {
					m.selected[idx] = true
				}
			}
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prevFilter := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)

	// Re-filter on text change
	if m.filter.Value() != prevFilter {
		m.applyFilter()
	}

	return m, cmd
}

func (m *pickerModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for i, t := range m.tasks {
		if query == "" ||
			strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  No tasks match filter"))
		b.WriteString("\n")
	} else {
		// Calculate scroll window
		start := 0
		if m.cursor >= pickerVisible {
			start = m.cursor - pickerVisible + 1
		}
		end := min(start+pickerVisible, len(m.filtered))

		for vi := start; vi < end; vi++ {
			idx := m.filtered[vi]
			t := m.tasks[idx]

			cursor := "  "
			if vi == m.cursor {
				cursor = "> "
			}

			check := ""
			if m.multi {
				check = "[ ] "
				if m.selected[idx] {
					check = "[x] "
				}
			}

			meta := dimStyle.Render(fmt.Sprintf(" — %dmin, %s, %s", t.Duration, t.Priority, t.Status))

			line := fmt.Sprintf("%s%s%s%s", cursor, check, t.Title, meta)
			if vi == m.cursor {
				line = highlightStyle.Render(fmt.Sprintf("%s%s", cursor, check)) + t.Title + meta
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	controls := "Enter: confirm — Esc: cancel"
	if m.multi {
		controls = fmt.Sprintf("%d selected — Space: toggle — %s", len(m.selected), controls)
	}
	b.WriteString(helpStyle.Render("\n" + controls))

	return b.String()
}

func (m pickerModel) Result() *PickerResult {
	if m.canceled {
		return &PickerResult{Canceled: true}
	}
	var ids []string
	for idx := range m.selected {
		ids = append(ids, m.tasks[idx].ID)
	}
	return &PickerResult{TaskIDs: ids}
}
