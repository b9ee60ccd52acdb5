package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/woxtom/cccript/config"
)

// PickerModel lets the user choose one stored profile on first use.
type PickerModel struct {
	profiles []config.Profile
	cursor   int
	choice   string
	canceled bool
}

// NewPickerModel creates a picker over the store's profiles in order.
func NewPickerModel(profiles []config.Profile) PickerModel {
	return PickerModel{profiles: profiles}
}

// Choice returns the selected identifier, or "" when canceled.
func (m PickerModel) Choice() string { return m.choice }

// Canceled reports whether the user aborted the picker.
func (m PickerModel) Canceled() bool { return m.canceled }

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.profiles)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.profiles[m.cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Choose a configuration"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")

	for i, p := range m.profiles {
		line := fmt.Sprintf("%d. %s", i+1, p.Name)
		if p.BaseURL != "" {
			line += "  " + p.BaseURL
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k ↓/j: move │ Enter: select │ q/Esc: cancel"))

	return b.String()
}

// RunPicker prompts for a profile and returns its identifier. The UI
// renders to stderr so stdout stays clean for eval-able output.
func RunPicker(profiles []config.Profile) (string, error) {
	if !IsTerminal() {
		return "", fmt.Errorf("interactive selection requires a terminal")
	}

	p := tea.NewProgram(NewPickerModel(profiles), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(PickerModel)
	if m.Canceled() || m.Choice() == "" {
		return "", ErrCanceled
	}
	return m.Choice(), nil
}
