package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormDataValidate(t *testing.T) {
	cases := []struct {
		name    string
		data    FormData
		wantErr bool
	}{
		{"valid", FormData{AuthToken: "sk-x", BaseURL: "https://api.example.com"}, false},
		{"missing token", FormData{BaseURL: "https://api.example.com"}, true},
		{"missing url", FormData{AuthToken: "sk-x"}, true},
		{"whitespace token", FormData{AuthToken: "   ", BaseURL: "https://api.example.com"}, true},
		{"bad url", FormData{AuthToken: "sk-x", BaseURL: "nope"}, true},
		{"name optional", FormData{AuthToken: "sk-x", BaseURL: "https://api.example.com", Name: ""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.data.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func typeString(m FormModel, s string) FormModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(FormModel)
	}
	return m
}

func press(m FormModel, key tea.KeyType) FormModel {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(FormModel)
}

func TestFormSubmitFlow(t *testing.T) {
	m := NewFormModel()

	m = typeString(m, "sk-ant-test")
	m = press(m, tea.KeyEnter) // token -> url
	m = typeString(m, "https://x.example.com/v1")
	m = press(m, tea.KeyEnter) // url -> name (left blank)
	m = press(m, tea.KeyEnter) // name -> model
	m = press(m, tea.KeyEnter) // model -> fast model
	m = press(m, tea.KeyEnter) // submit

	if !m.Done() {
		t.Fatal("form should be done after submitting valid data")
	}

	data := m.Data()
	if data.AuthToken != "sk-ant-test" {
		t.Errorf("token = %q", data.AuthToken)
	}
	if data.BaseURL != "https://x.example.com/v1" {
		t.Errorf("url = %q", data.BaseURL)
	}
	// Blank name falls back to the URL host.
	if data.Name != "x.example.com" {
		t.Errorf("name = %q, want x.example.com", data.Name)
	}
}

func TestFormRejectsEmptyRequiredInput(t *testing.T) {
	m := NewFormModel()
	for i := 0; i < FormFieldCount; i++ {
		m = press(m, tea.KeyEnter)
	}
	if m.Done() {
		t.Error("form must not submit without token and URL")
	}
	if m.errMsg == "" {
		t.Error("expected a validation error message")
	}
}

func TestFormCancel(t *testing.T) {
	m := NewFormModel()
	m = press(m, tea.KeyEsc)
	if !m.Canceled() {
		t.Error("esc should cancel the form")
	}
}

func TestFormNameSuggestionPlaceholder(t *testing.T) {
	m := NewFormModel()
	m = press(m, tea.KeyTab) // token -> url
	m = typeString(m, "https://x.example.com/v1")
	m = press(m, tea.KeyTab) // url -> name

	if got := m.inputs[FormFieldName].Placeholder; got != "x.example.com" {
		t.Errorf("name placeholder = %q, want suggested host", got)
	}
}
