package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/masrafi-000/mytaskmanager/internal/ui"
	"github.com/masrafi-000/mytaskmanager/pkg/api"
	"github.com/masrafi-000/mytaskmanager/pkg/task"
	"github.com/masrafi-000/mytaskmanager/pkg/task/date"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPriority
	fieldDue
	fieldProject
	fieldTags
	formFieldCount
)

var formLabels = [formFieldCount]string{"Title", "Description", "Priority", "Due", "Project", "Tags"}

// formModel backs both the add and the edit screen; editing holds the
// task id when a task is being edited and is empty for a new one.
type formModel struct {
	editing task.ID

	inputs   [formFieldCount]textinput.Model
	priority task.Priority
	focus    formField

	titleErr string
	dueErr   string

	submitting bool
}

func newFormModel() formModel {
	m := formModel{priority: task.Medium}
	for f := fieldTitle; f < formFieldCount; f++ {
		in := textinput.NewModel()
		in.Width = 40
		m.inputs[f] = in
	}
	m.inputs[fieldTitle].Placeholder = "What needs to be done?"
	m.inputs[fieldDue].Placeholder = "tomorrow, in 2 weeks, 25/12/2026 ..."
	m.inputs[fieldTags].Placeholder = "comma-separated"
	m.setFocus(fieldTitle)
	return m
}

func editFormModel(t task.Task) formModel {
	m := newFormModel()
	m.editing = t.ID
	m.inputs[fieldTitle].SetValue(t.Title)
	m.inputs[fieldDescription].SetValue(t.Description)
	m.inputs[fieldProject].SetValue(t.Project)
	m.inputs[fieldTags].SetValue(strings.Join(t.Tags, ","))
	if t.Priority != "" {
		m.priority = t.Priority
	}
	if t.Due != nil {
		m.inputs[fieldDue].SetValue(t.Due.Format("2/01/2006"))
	}
	return m
}

func (m *formModel) setFocus(f formField) {
	m.focus = f
	for i := range m.inputs {
		if formField(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *formModel) next() {
	m.setFocus((m.focus + 1) % formFieldCount)
}

func (m *formModel) prev() {
	m.setFocus((m.focus + formFieldCount - 1) % formFieldCount)
}

func (m *formModel) cyclePriorityField(back bool) {
	order := []task.Priority{task.Low, task.Medium, task.High}
	for i, p := range order {
		if p == m.priority {
			if back {
				m.priority = order[(i+len(order)-1)%len(order)]
			} else {
				m.priority = order[(i+1)%len(order)]
			}
			return
		}
	}
	m.priority = task.Medium
}

// input builds the gateway payload, validating as it goes.
func (m *formModel) input(now time.Time) (api.TaskInput, bool) {
	m.titleErr, m.dueErr = "", ""

	in := api.TaskInput{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Description: m.inputs[fieldDescription].Value(),
		Priority:    m.priority,
		Project:     strings.TrimSpace(m.inputs[fieldProject].Value()),
		Tags:        splitList(m.inputs[fieldTags].Value()),
	}
	if in.Title == "" {
		m.titleErr = "Title is required"
	}
	if raw := strings.TrimSpace(m.inputs[fieldDue].Value()); raw != "" {
		due, err := date.Parse(raw, now)
		if err != nil {
			m.dueErr = "Unrecognized date"
		} else {
			in.Due = &due
		}
	}
	return in, m.titleErr == "" && m.dueErr == ""
}

func (a *app) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.tasks.form
	if f.submitting {
		return a, nil
	}

	switch key.Type {
	case tea.KeyEsc:
		a.tasks.leaveForm()
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		f.next()
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.prev()
		return a, nil
	case tea.KeyLeft, tea.KeyRight:
		if f.focus == fieldPriority {
			f.cyclePriorityField(key.Type == tea.KeyLeft)
			return a, nil
		}
	case tea.KeyEnter:
		if f.focus < formFieldCount-1 {
			f.next()
			return a, nil
		}
		return a.submitForm()
	case tea.KeyCtrlS:
		return a.submitForm()
	}

	if f.focus == fieldPriority {
		switch key.String() {
		case "h", "j":
			f.cyclePriorityField(true)
		case "l", "k":
			f.cyclePriorityField(false)
		}
		return a, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(key)
	return a, cmd
}

func (a *app) submitForm() (tea.Model, tea.Cmd) {
	f := &a.tasks.form
	in, ok := f.input(time.Now())
	if !ok {
		return a, nil
	}
	f.submitting = true
	if f.editing != "" {
		return a, a.updateTodo(f.editing, in)
	}
	return a, a.createTodo(in)
}

func (m formModel) view() string {
	title := "New task"
	if m.editing != "" {
		title = "Edit task"
	}
	s := "\n " + ui.FormTitle.Render(title) + "\n\n"

	for f := fieldTitle; f < formFieldCount; f++ {
		s += " " + ui.FormLabel.Render(formLabels[f])
		if f == fieldPriority {
			s += m.priorityView() + "\n"
		} else {
			s += m.inputs[f].View() + "\n"
		}
		if f == fieldTitle && m.titleErr != "" {
			s += " " + ui.FieldError.Render(m.titleErr) + "\n"
		}
		if f == fieldDue && m.dueErr != "" {
			s += " " + ui.FieldError.Render(m.dueErr) + "\n"
		}
	}
	return s
}

func (m formModel) priorityView() string {
	s := ""
	for _, p := range []task.Priority{task.Low, task.Medium, task.High} {
		label := " " + string(p) + " "
		style := ui.TaskMeta
		if p == m.priority {
			style = style.Copy().Foreground(ui.PriorityColor(p)).Bold(true)
			if m.focus == fieldPriority {
				style = style.Copy().Underline(true)
			}
		}
		s += style.Render(label)
	}
	return s
}

func (m formModel) statusLine() string {
	if m.submitting {
		return ui.StatusInfo.Render("Saving...")
	}
	return ui.StatusInfo.Render("enter: next ∙ ctrl+s: save ∙ esc: cancel")
}
