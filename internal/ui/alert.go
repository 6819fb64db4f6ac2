package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Alert is a blocking notification with a single acknowledge button.
// Every key goes to the alert until it is dismissed.
type Alert struct {
	Completed    bool
	acknowledged bool
	form         *huh.Form
	message      string
}

// NewAlert creates a new alert showing message
func NewAlert(message string) *Alert {
	a := &Alert{message: message}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("OK").
				Negative("").
				Value(&a.acknowledged),
		),
	)

	return a
}

func (a *Alert) Init() tea.Cmd {
	return a.form.Init()
}

func (a *Alert) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			a.Completed = true
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State != huh.StateNormal {
		a.Completed = true
		return a, nil
	}

	return a, cmd
}

func (a *Alert) View() string {
	if a.form != nil {
		return a.form.View()
	}
	return a.message
}

// Message returns the text of the alert
func (a *Alert) Message() string {
	return a.message
}
