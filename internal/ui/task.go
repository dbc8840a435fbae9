package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/masrafi-000/mytaskmanager/pkg/task"
)

var (
	TaskTitle    = lipgloss.NewStyle().Bold(true)
	TaskMeta     = lipgloss.NewStyle().Foreground(Secondary)
	TaskTag      = lipgloss.NewStyle().Foreground(Blue)
	TaskProject  = lipgloss.NewStyle().Foreground(Yellow)
	TaskSelected = lipgloss.NewStyle().Foreground(Green).Bold(true)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")

	ErrorBanner = lipgloss.NewStyle().Foreground(Primary).Background(Red).Padding(0, 1)
	FieldError  = lipgloss.NewStyle().Foreground(Red)
	StatusInfo  = lipgloss.NewStyle().Foreground(Secondary)
	FormLabel   = lipgloss.NewStyle().Foreground(Secondary).Width(12)
	FormTitle   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
)

// PriorityColor maps a priority onto the shared palette.
func PriorityColor(p task.Priority) lipgloss.Color {
	switch p {
	case task.High:
		return Red
	case task.Medium:
		return Orange
	}
	return Faded
}
