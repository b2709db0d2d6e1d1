package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for solution and project selection.
type selectModel struct {
	title           string
	choices         []Choice
	filteredChoices []Choice
	filteredIndices []int // maps filtered index to original index
	cursor          int
	filter          string
	showKindPrefix  bool
	selected        *Choice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(title string, choices []Choice) selectModel {
	// Show kind prefixes only when kinds are mixed
	showKindPrefix := false
	for _, choice := range choices {
		if choice.Kind != choices[0].Kind {
			showKindPrefix = true
			break
		}
	}

	return selectModel{
		title:           title,
		choices:         choices,
		filteredChoices: choices,
		filteredIndices: makeRange(len(choices)),
		showKindPrefix:  showKindPrefix,
	}
}

// makeRange creates a slice of integers from 0 to n-1.
func makeRange(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	m.handleNavigationKeys(key)
	m.handleFilterKeys(key)

	return m, nil
}

// handleSpecialKeys handles special keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if len(m.filteredChoices) > 0 && m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	default:
		// j and k move the cursor, every other printable key filters
		if len(key) == 1 && key != "j" && key != "k" {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
		m.filteredIndices = makeRange(len(m.choices))
	} else {
		m.filteredChoices = []Choice{}
		m.filteredIndices = []int{}

		filterLower := strings.ToLower(m.filter)
		for i, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Name), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
				m.filteredIndices = append(m.filteredIndices, i)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredChoices) || m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("? %s:  [Use arrows to move, type to filter]\n\n", m.title))

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatChoice(choice, m.showKindPrefix)))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice Choice, showKindPrefix bool) string {
	result := choice.Name
	if showKindPrefix {
		result = fmt.Sprintf("[%s] %s", choice.Kind, choice.Name)
	}

	if choice.Detail != "" {
		result += fmt.Sprintf(" : %s", choice.Detail)
	}

	return result
}

// promptSelectBubbleTea runs the Bubble Tea program for selection.
func promptSelectBubbleTea(title string, choices []Choice, output io.Writer) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	p := tea.NewProgram(initialSelectModel(title, choices), tea.WithOutput(output))

	finalModel, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	return selectionFrom(finalModel)
}

// selectionFrom extracts the chosen entry from the final program model.
func selectionFrom(finalModel tea.Model) (Choice, error) {
	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, ErrUnexpectedModel
	}

	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}

	return *model.selected, nil
}
