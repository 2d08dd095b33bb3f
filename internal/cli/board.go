package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/todo/internal/core"
	"github.com/valter-silva-au/todo/pkg/models"
)

// Board focus areas.
const (
	focusInput = iota
	focusList
)

type boardModel struct {
	svc     core.TaskService
	input   textinput.Model
	focus   int
	cursor  int
	showIDs bool
	width   int
	height  int

	// Data.
	tasks []models.Task
	theme models.Theme

	// State.
	styles boardStyles
	errMsg string
	status string
}

func newBoardModel(svc core.TaskService, showIDs bool) boardModel {
	ti := textinput.New()
	ti.Placeholder = "Add a new task"
	ti.Width = 48
	ti.Prompt = "> "
	ti.Focus()

	m := boardModel{
		svc:     svc,
		input:   ti,
		focus:   focusInput,
		showIDs: showIDs,
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh reloads the task list and theme from the service and keeps the
// cursor inside the list.
func (m *boardModel) refresh() {
	m.tasks = m.svc.Tasks()
	m.theme = m.svc.Theme()
	m.styles = newBoardStyles(m.theme)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.addTask()
		return m, nil
	case "tab", "esc":
		m.focus = focusList
		m.input.Blur()
		return m, nil
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Editing clears a stale validation message.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace || msg.Type == tea.KeySpace {
		m.errMsg = ""
	}
	return m, cmd
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "tab", "a", "i":
		m.focus = focusInput
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "d", "x", "delete", "backspace":
		m.removeSelected()
	case "t":
		m.toggleTheme()
	}
	return m, nil
}

func (m *boardModel) addTask() {
	task, err := m.svc.AddTask(m.input.Value())
	if err != nil {
		// Rejected input stays in the field so it can be fixed.
		m.errMsg = err.Error()
		m.status = ""
		return
	}
	m.input.Reset()
	m.errMsg = ""
	m.status = fmt.Sprintf("Added task %d", task.ID)
	m.refresh()
	m.cursor = len(m.tasks) - 1
}

func (m *boardModel) removeSelected() {
	if len(m.tasks) == 0 {
		return
	}
	task := m.tasks[m.cursor]
	if _, err := m.svc.RemoveTask(task.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("Removed %q", task.Text)
	m.refresh()
}

func (m *boardModel) toggleTheme() {
	theme, err := m.svc.ToggleTheme()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("Switched to %s theme", theme)
	m.refresh()
}

func (m boardModel) View() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.title.Render(m.theme.Title() + " To-Do List"))
	b.WriteString("\n")
	b.WriteString(s.hint.Render("t: switch to " + string(m.theme.Toggle())))
	b.WriteString("\n\n")

	inputStyle := s.input
	if m.focus == focusInput {
		inputStyle = s.inputFocused
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(s.errorText.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(s.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderTasks())
	b.WriteString("\n\n")
	b.WriteString(s.help.Render(m.helpText()))

	view := s.app.Render(b.String())
	if m.width > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, view,
			lipgloss.WithWhitespaceBackground(paletteFor(m.theme).background))
	}
	return view
}

func (m boardModel) renderTasks() string {
	if len(m.tasks) == 0 {
		return m.styles.hint.Render("No tasks yet.")
	}

	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		text := t.Text
		if m.showIDs {
			text = m.styles.taskID.Render(fmt.Sprintf("%d ", t.ID)) + text
		}
		if m.focus == focusList && i == m.cursor {
			lines = append(lines, m.styles.selectedItem.Render("▸ "+text))
		} else {
			lines = append(lines, m.styles.item.Render("  "+text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) helpText() string {
	if m.focus == focusInput {
		return "enter: add | tab: select tasks | ctrl+t: theme | ctrl+c: quit"
	}
	return "j/k: move | d: delete | t: theme | tab: add task | q: quit"
}
