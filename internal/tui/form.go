package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/woxtom/cccript/internal/utils"
)

// FormField is the index of each form field
const (
	FormFieldAuthToken = iota
	FormFieldBaseURL
	FormFieldName
	FormFieldModel
	FormFieldFastModel
	FormFieldCount
)

// ErrCanceled is returned when the user aborts an interactive flow.
var ErrCanceled = errors.New("canceled")

// FormData is the raw input collected from the new-profile form.
type FormData struct {
	Name           string
	AuthToken      string
	BaseURL        string
	Model          string
	SmallFastModel string
}

// Validate enforces the required creation fields. The display name is
// optional since it can be derived from the URL host.
func (f *FormData) Validate() error {
	if strings.TrimSpace(f.AuthToken) == "" {
		return errors.New("auth token cannot be empty")
	}
	if strings.TrimSpace(f.BaseURL) == "" {
		return errors.New("base URL cannot be empty")
	}
	if !utils.ValidateURL(strings.TrimSpace(f.BaseURL)) {
		return errors.New("invalid URL format")
	}
	return nil
}

func formInputs() []textinput.Model {
	inputs := make([]textinput.Model, FormFieldCount)

	inputs[FormFieldAuthToken] = textinput.New()
	inputs[FormFieldAuthToken].Placeholder = "sk-ant-..."
	inputs[FormFieldAuthToken].CharLimit = 256
	inputs[FormFieldAuthToken].Width = 40
	inputs[FormFieldAuthToken].EchoMode = textinput.EchoPassword
	inputs[FormFieldAuthToken].EchoCharacter = '•'
	inputs[FormFieldAuthToken].Prompt = ""

	inputs[FormFieldBaseURL] = textinput.New()
	inputs[FormFieldBaseURL].Placeholder = "https://api.anthropic.com"
	inputs[FormFieldBaseURL].CharLimit = 256
	inputs[FormFieldBaseURL].Width = 40
	inputs[FormFieldBaseURL].Prompt = ""

	inputs[FormFieldName] = textinput.New()
	inputs[FormFieldName].Placeholder = "derived from URL host"
	inputs[FormFieldName].CharLimit = 64
	inputs[FormFieldName].Width = 40
	inputs[FormFieldName].Prompt = ""

	inputs[FormFieldModel] = textinput.New()
	inputs[FormFieldModel].Placeholder = "optional"
	inputs[FormFieldModel].CharLimit = 128
	inputs[FormFieldModel].Width = 40
	inputs[FormFieldModel].Prompt = ""

	inputs[FormFieldFastModel] = textinput.New()
	inputs[FormFieldFastModel].Placeholder = "optional"
	inputs[FormFieldFastModel].CharLimit = 128
	inputs[FormFieldFastModel].Width = 40
	inputs[FormFieldFastModel].Prompt = ""

	inputs[FormFieldAuthToken].Focus()

	return inputs
}

var formLabels = []string{
	"Auth Token:",
	"Base URL:",
	"Name:",
	"Model:",
	"Fast Model:",
}

// FormModel drives the new-profile form.
type FormModel struct {
	inputs   []textinput.Model
	focus    int
	errMsg   string
	done     bool
	canceled bool
}

// NewFormModel creates the form with the token field focused.
func NewFormModel() FormModel {
	return FormModel{inputs: formInputs()}
}

// Data extracts the collected values. A blank name falls back to the URL
// host, matching the placeholder.
func (m FormModel) Data() FormData {
	data := FormData{
		AuthToken:      strings.TrimSpace(m.inputs[FormFieldAuthToken].Value()),
		BaseURL:        strings.TrimSpace(m.inputs[FormFieldBaseURL].Value()),
		Name:           strings.TrimSpace(m.inputs[FormFieldName].Value()),
		Model:          strings.TrimSpace(m.inputs[FormFieldModel].Value()),
		SmallFastModel: strings.TrimSpace(m.inputs[FormFieldFastModel].Value()),
	}
	if data.Name == "" {
		data.Name = utils.ExtractHost(data.BaseURL)
	}
	return data
}

// Done reports whether the form was submitted successfully.
func (m FormModel) Done() bool { return m.done }

// Canceled reports whether the user aborted the form.
func (m FormModel) Canceled() bool { return m.canceled }

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) setFocus(index int) {
	m.inputs[m.focus].Blur()
	m.focus = index
	m.inputs[m.focus].Focus()

	// Leaving the URL field: surface the suggested display name.
	if m.focus == FormFieldName && m.inputs[FormFieldName].Value() == "" {
		if host := utils.ExtractHost(strings.TrimSpace(m.inputs[FormFieldBaseURL].Value())); host != "" {
			m.inputs[FormFieldName].Placeholder = host
		}
	}
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % FormFieldCount)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + FormFieldCount - 1) % FormFieldCount)
			return m, nil

		case tea.KeyEnter:
			if m.focus < FormFieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			data := m.Data()
			if err := data.Validate(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New configuration"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := formLabels[i]
		if i == m.focus {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(helpStyle.Render(label))
		}
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/↓: next │ Shift+Tab/↑: previous │ Enter: confirm │ Esc: cancel"))

	return b.String()
}

// RunForm runs the new-profile form on the terminal. The UI renders to
// stderr so stdout stays clean for eval-able output.
func RunForm() (FormData, error) {
	if !IsTerminal() {
		return FormData{}, fmt.Errorf("interactive creation requires a terminal")
	}

	p := tea.NewProgram(NewFormModel(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return FormData{}, err
	}

	m := final.(FormModel)
	if m.Canceled() || !m.Done() {
		return FormData{}, ErrCanceled
	}
	return m.Data(), nil
}
