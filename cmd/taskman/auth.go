package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/masrafi-000/mytaskmanager/internal/ui"
	"github.com/masrafi-000/mytaskmanager/pkg/api"
)

const (
	authFieldName = iota
	authFieldEmail
	authFieldPassword
	authFieldRepeat
	authFieldCount
)

// authModel is the login / sign-up screen. Validation failures stay inline
// and never hit the network.
type authModel struct {
	signup     bool
	inputs     [authFieldCount]textinput.Model
	focus      int
	fieldErr   string
	submitting bool
}

func newAuthModel() authModel {
	m := authModel{}
	labels := [authFieldCount]string{"Name", "Email", "Password", "Repeat password"}
	for i := range m.inputs {
		in := textinput.NewModel()
		in.Prompt = ""
		in.Placeholder = labels[i]
		in.Width = 32
		if i == authFieldPassword || i == authFieldRepeat {
			in.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = in
	}
	m.focus = authFieldEmail
	m.inputs[authFieldEmail].Focus()
	return m
}

// fields returns the indexes active for the current mode.
func (m authModel) fields() []int {
	if m.signup {
		return []int{authFieldName, authFieldEmail, authFieldPassword, authFieldRepeat}
	}
	return []int{authFieldEmail, authFieldPassword}
}

func (m *authModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *authModel) moveFocus(inc int) {
	fields := m.fields()
	cur := 0
	for i, f := range fields {
		if f == m.focus {
			cur = i
		}
	}
	next := (cur + inc + len(fields)) % len(fields)
	m.setFocus(fields[next])
}

func (m *authModel) toggleMode() {
	m.signup = !m.signup
	m.fieldErr = ""
	if m.signup {
		m.setFocus(authFieldName)
	} else {
		m.setFocus(authFieldEmail)
	}
}

// validate returns an inline error message, or "" when the form may be
// submitted.
func (m authModel) validate() string {
	email := strings.TrimSpace(m.inputs[authFieldEmail].Value())
	password := m.inputs[authFieldPassword].Value()
	if m.signup && strings.TrimSpace(m.inputs[authFieldName].Value()) == "" {
		return "Name is required"
	}
	if email == "" {
		return "Email is required"
	}
	if password == "" {
		return "Password is required"
	}
	if m.signup && password != m.inputs[authFieldRepeat].Value() {
		return "Passwords do not match"
	}
	return ""
}

func (a *app) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	m := &a.auth
	if m.submitting {
		return a, nil
	}

	switch key.Type {
	case tea.KeyEsc:
		if !a.dismissBanner() {
			m.fieldErr = ""
		}
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return a, nil
	case tea.KeyCtrlS:
		m.toggleMode()
		return a, nil
	case tea.KeyEnter:
		if fields := m.fields(); m.focus != fields[len(fields)-1] {
			m.moveFocus(1)
			return a, nil
		}
		if err := m.validate(); err != "" {
			m.fieldErr = err
			return a, nil
		}
		m.fieldErr = ""
		m.submitting = true
		return a, a.submitAuth()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return a, cmd
}

func (a *app) submitAuth() tea.Cmd {
	client := a.client
	m := a.auth
	if m.signup {
		in := api.SignUpInput{
			Name:           strings.TrimSpace(m.inputs[authFieldName].Value()),
			Email:          strings.TrimSpace(m.inputs[authFieldEmail].Value()),
			Password:       m.inputs[authFieldPassword].Value(),
			RepeatPassword: m.inputs[authFieldRepeat].Value(),
		}
		return func() tea.Msg {
			res, err := client.SignUp(context.Background(), in)
			if err != nil {
				return errMsg{cat: catAuth, err: err}
			}
			return authDoneMsg{res: res}
		}
	}
	email := strings.TrimSpace(m.inputs[authFieldEmail].Value())
	password := m.inputs[authFieldPassword].Value()
	return func() tea.Msg {
		res, err := client.Login(context.Background(), email, password)
		if err != nil {
			return errMsg{cat: catAuth, err: err}
		}
		return authDoneMsg{res: res}
	}
}

func (m authModel) view(width int) string {
	title := "Log in"
	hint := "enter: submit ∙ tab: next field ∙ ctrl+s: create an account"
	if m.signup {
		title = "Sign up"
		hint = "enter: submit ∙ tab: next field ∙ ctrl+s: back to login"
	}

	s := ui.FormTitle.Render("My Tasks ∙ "+title) + "\n\n"
	for _, f := range m.fields() {
		s += ui.FormLabel.Render(m.inputs[f].Placeholder) + m.inputs[f].View() + "\n"
	}
	if m.fieldErr != "" {
		s += "\n" + ui.FieldError.Render(m.fieldErr) + "\n"
	}
	if m.submitting {
		s += "\n" + ui.StatusInfo.Render("Signing in...") + "\n"
	}
	s += "\n" + ui.StatusInfo.Render(hint)

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(s)
}
