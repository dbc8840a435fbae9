package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/masrafi-000/mytaskmanager/internal/ui"
	"github.com/masrafi-000/mytaskmanager/pkg/api"
	"github.com/masrafi-000/mytaskmanager/pkg/task"
	"github.com/masrafi-000/mytaskmanager/pkg/task/date"
)

const (
	headerHeight = 5
	footerHeight = 1
)

type tasksMode int

const (
	modeNormal tasksMode = iota
	modeSearch
	modeTags
	modeForm
	// delete-one and delete-many keep distinct pending-confirmation slots;
	// each gates on an explicit y/n before the destructive call fires.
	modeConfirmDelete
	modeConfirmBulk
)

var tabOrder = []task.Tab{task.TabAll, task.TabPending, task.TabCompleted, task.TabToday, task.TabOverdue}

type tasksModel struct {
	user api.User
	list *task.List

	visible []task.Task
	counts  task.Counts
	cursor  int

	viewport viewport.Model
	tabs     ui.Tabs
	loading  bool

	mode        tasksMode
	searchInput textinput.Model
	tagsInput   textinput.Model
	form        formModel

	confirmOne  task.ID
	confirmMany []task.ID
}

func newTasksModel() tasksModel {
	search := textinput.NewModel()
	search.Prompt = "/"
	search.Width = 40

	tags := textinput.NewModel()
	tags.Prompt = "#"
	tags.Placeholder = "comma-separated tags"
	tags.Width = 40

	return tasksModel{
		list:        task.NewList(),
		tabs:        ui.NewTabs(tabLabels(task.Counts{})),
		viewport:    viewport.Model{},
		searchInput: search,
		tagsInput:   tags,
		form:        newFormModel(),
	}
}

func tabLabels(c task.Counts) []string {
	return []string{
		"All (" + strconv.Itoa(c.All) + ")",
		"Pending (" + strconv.Itoa(c.Pending) + ")",
		"Completed (" + strconv.Itoa(c.Completed) + ")",
		"Today (" + strconv.Itoa(c.Today) + ")",
		"Overdue (" + strconv.Itoa(c.Overdue) + ")",
	}
}

func (m *tasksModel) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height - headerHeight - footerHeight
	m.tabs.Width = width
}

// refresh recomputes the derived list after any store or view mutation.
func (m *tasksModel) refresh() {
	m.visible, m.counts = task.Derive(m.list.Store.Tasks(), m.list.View, time.Now())
	m.tabs.SetLabels(tabLabels(m.counts))
	m.setCursor(m.cursor)
}

func (m *tasksModel) render() {
	m.viewport.SetContent(m.viewTasks())
}

func (m *tasksModel) setCursor(value int) {
	size := len(m.visible)
	m.cursor = clamp(value, 0, max(size-1, 0))
	if size == 0 {
		return
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor - m.viewport.Height + 1
	}
	if m.cursor <= m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
	// The cursor highlight is part of the rendered content.
	m.render()
}

func (m *tasksModel) atCursor() task.ID {
	if m.cursor >= len(m.visible) {
		return ""
	}
	return m.visible[m.cursor].ID
}

func (m *tasksModel) visibleIDs() []task.ID {
	out := make([]task.ID, len(m.visible))
	for i, t := range m.visible {
		out[i] = t.ID
	}
	return out
}

func (m *tasksModel) setTab(i int) {
	m.tabs.Set(i)
	m.list.View.SetTab(tabOrder[m.tabs.Value()])
	m.refresh()
	m.setCursor(0)
}

func (m *tasksModel) leaveForm() {
	if m.mode == modeForm {
		m.mode = modeNormal
	}
}

func (a *app) updateTasks(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	m := &a.tasks

	switch m.mode {
	case modeSearch:
		return a.updateSearch(key)
	case modeTags:
		return a.updateTagFilter(key)
	case modeForm:
		return a.updateForm(key)
	case modeConfirmDelete, modeConfirmBulk:
		return a.updateConfirm(key)
	}
	return a.updateNormal(key)
}

func (a *app) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.tasks
	switch key.Type {
	case tea.KeyEsc:
		m.searchInput.SetValue("")
		m.list.View.SetSearch("")
		m.mode = modeNormal
		m.refresh()
		return a, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		return a, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	m.list.View.SetSearch(m.searchInput.Value())
	m.refresh()
	return a, cmd
}

func (a *app) updateTagFilter(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.tasks
	switch key.Type {
	case tea.KeyEsc:
		m.tagsInput.SetValue("")
		m.list.View.SetTags(nil)
		m.mode = modeNormal
		m.refresh()
		return a, nil
	case tea.KeyEnter:
		m.list.View.SetTags(splitList(m.tagsInput.Value()))
		m.mode = modeNormal
		m.refresh()
		return a, nil
	}
	var cmd tea.Cmd
	m.tagsInput, cmd = m.tagsInput.Update(key)
	return a, cmd
}

func (a *app) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.tasks
	switch key.String() {
	case "y", "Y":
		if m.mode == modeConfirmDelete {
			id := m.confirmOne
			m.confirmOne = ""
			m.mode = modeNormal
			return a, a.deleteTodo(id)
		}
		ids := m.confirmMany
		m.confirmMany = nil
		m.mode = modeNormal
		return a, a.deleteTodos(ids)
	case "n", "N", "esc":
		m.confirmOne = ""
		m.confirmMany = nil
		m.mode = modeNormal
	}
	return a, nil
}

func (a *app) updateNormal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.tasks

	if key.Type == tea.KeyEsc {
		a.dismissBanner()
		return a, nil
	}

	switch key.String() {
	case "q":
		return a, tea.Quit

	// navigation
	case "j":
		m.setCursor(m.cursor + 1)
	case "k":
		m.setCursor(m.cursor - 1)
	case "g":
		m.setCursor(0)
	case "G":
		m.setCursor(len(m.visible))
	case "ctrl+d":
		m.setCursor(m.cursor + 10)
	case "ctrl+u":
		m.setCursor(m.cursor - 10)

	// tabs
	case "1", "2", "3", "4", "5":
		i, _ := strconv.Atoi(key.String())
		m.setTab(i - 1)
	case "tab":
		m.setTab((m.tabs.Value() + 1) % len(tabOrder))
	case "shift+tab":
		m.setTab((m.tabs.Value() + len(tabOrder) - 1) % len(tabOrder))

	// filters and sorting
	case "/":
		m.mode = modeSearch
		m.searchInput.Focus()
	case "#":
		m.mode = modeTags
		m.tagsInput.SetValue(strings.Join(m.list.View.Tags, ","))
		m.tagsInput.Focus()
	case "p":
		m.list.View.SetPriority(cyclePriority(m.list.View.Priority))
		m.refresh()
	case "P":
		m.list.View.SetProject(cycleProject(m.list.View.Project, m.list.Store.Projects()))
		m.refresh()
	case "f":
		m.list.View.SetDateFilter(cycleDateFilter(m.list.View.DateFilter))
		m.refresh()
	case "s":
		m.list.View.SetSortBy(cycleSortKey(m.list.View.SortBy))
		m.refresh()
	case "S":
		if m.list.View.Order == task.Asc {
			m.list.View.SetOrder(task.Desc)
		} else {
			m.list.View.SetOrder(task.Asc)
		}
		m.refresh()

	// selection
	case "x":
		if id := m.atCursor(); id != "" {
			m.list.View.ToggleSelected(id)
			m.render()
		}
	case "a":
		m.list.View.SelectAll(m.visibleIDs())
		m.render()
	case "A":
		m.list.View.ClearSelection()
		m.render()

	// task intents
	case " ", "enter":
		if id := m.atCursor(); id != "" {
			m.list.Store.ToggleCompleted(id, time.Now())
			m.refresh()
		}
	case "o":
		m.form = newFormModel()
		m.mode = modeForm
	case "i":
		if id := m.atCursor(); id != "" {
			t, _ := m.list.Store.Get(id)
			m.form = editFormModel(t)
			m.mode = modeForm
		}
	case "d":
		if id := m.atCursor(); id != "" {
			m.confirmOne = id
			m.mode = modeConfirmDelete
		}
	case "D":
		if m.list.View.SelectionSize() > 0 {
			m.confirmMany = m.list.View.Selected()
			m.mode = modeConfirmBulk
		}
	case "r":
		m.loading = true
		return a, a.fetchTodos()
	case "L":
		a.logout()
	}
	return a, nil
}

func (m tasksModel) view() string {
	s := m.tabs.View()
	s += m.filterLine() + "\n"
	if m.mode == modeForm {
		// The form renders live so keystrokes show up immediately.
		s += m.form.view() + "\n"
	} else {
		s += m.viewport.View() + "\n"
	}
	s += m.statusLine()
	return s
}

// filterLine summarizes the active filters the way the web filter bar does.
func (m tasksModel) filterLine() string {
	v := m.list.View
	parts := []string{
		"sort:" + string(v.SortBy) + " " + string(v.Order),
	}
	if v.Priority != task.FilterAll {
		parts = append(parts, "priority:"+v.Priority)
	}
	if v.Project != task.FilterAll {
		parts = append(parts, "project:"+v.Project)
	}
	if v.DateFilter != task.DateAll {
		parts = append(parts, "due:"+string(v.DateFilter))
	}
	if len(v.Tags) > 0 {
		parts = append(parts, "tags:"+strings.Join(v.Tags, ","))
	}
	if v.Search != "" {
		parts = append(parts, "search:"+v.Search)
	}
	if n := v.SelectionSize(); n > 0 {
		parts = append(parts, strconv.Itoa(n)+" selected")
	}
	return ui.StatusInfo.Render(" " + strings.Join(parts, "  "))
}

func (m tasksModel) statusLine() string {
	switch m.mode {
	case modeSearch:
		return m.searchInput.View()
	case modeTags:
		return m.tagsInput.View()
	case modeConfirmDelete:
		t, _ := m.list.Store.Get(m.confirmOne)
		return ui.FieldError.Render(fmt.Sprintf("Delete %q? (y/n)", t.Title))
	case modeConfirmBulk:
		return ui.FieldError.Render(fmt.Sprintf("Delete %d selected tasks? (y/n)", len(m.confirmMany)))
	case modeForm:
		return m.form.statusLine()
	}
	if m.loading {
		return ui.StatusInfo.Render("Loading tasks...")
	}
	return ui.StatusInfo.Render("o: add ∙ i: edit ∙ space: done ∙ d/D: delete ∙ /: search ∙ q: quit")
}

func (m tasksModel) viewTasks() string {
	if len(m.visible) == 0 {
		return "\n " + ui.TaskMeta.Render(emptyMessage(m.list.View.Tab))
	}

	s := ""
	for i, t := range m.visible {
		title := ui.TaskTitle
		if t.Completed {
			title = title.Copy().Strikethrough(true).Foreground(ui.Secondary)
		}
		if i == m.cursor {
			title = title.Copy().Background(ui.Faded)
		}

		marker := "  "
		if m.list.View.IsSelected(t.ID) {
			marker = ui.TaskSelected.Render("▌") + " "
		}
		box := "[ ] "
		if t.Completed {
			box = "[x] "
		}

		s += marker
		s += lipgloss.NewStyle().Foreground(ui.PriorityColor(t.Priority)).Render("●") + " "
		s += box
		s += title.Render(t.Title)

		if t.Due != nil {
			s += ui.TaskDivider
			s += lipgloss.NewStyle().Foreground(dueColor(*t.Due)).Render(formatDue(*t.Due, time.Now()))
		}
		if t.Project != "" {
			s += ui.TaskDivider + ui.TaskProject.Render("@"+t.Project)
		}
		for _, tag := range t.Tags {
			s += " " + ui.TaskTag.Render("#"+tag)
		}
		s += "\n"
	}
	return s
}

// empty-state messages per tab.
func emptyMessage(tab task.Tab) string {
	switch tab {
	case task.TabCompleted:
		return "No completed tasks. Complete some tasks to see them here."
	case task.TabOverdue:
		return "No overdue tasks. Great job staying on top of your deadlines!"
	case task.TabToday:
		return "No tasks due today. Enjoy your free day or add some tasks!"
	}
	return "No tasks yet. Create your first task to get started!"
}

func dueColor(t time.Time) lipgloss.Color {
	now := time.Now()
	if date.BeforeDay(t, now) {
		return ui.Red
	}
	if date.SameDay(t, now) {
		return ui.Orange
	}
	return ui.Faded
}

func formatDue(t, now time.Time) string {
	days := int(date.StartOfDay(t).Sub(date.StartOfDay(now)).Hours()) / 24
	switch {
	case days < -1:
		return strconv.Itoa(-days) + " days ago"
	case days == -1:
		return "yesterday"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 14:
		return strconv.Itoa(days) + " days"
	case days <= 31:
		return strconv.Itoa(days/7) + " weeks"
	default:
		months := days / 31
		suffix := ""
		if months > 1 {
			suffix = "s"
		}
		return strconv.Itoa(months) + " month" + suffix
	}
}

func cyclePriority(cur string) string {
	order := []string{task.FilterAll, string(task.High), string(task.Medium), string(task.Low)}
	return cycle(order, cur)
}

func cycleDateFilter(cur task.DateFilter) task.DateFilter {
	order := []task.DateFilter{task.DateAll, task.DateToday, task.DateTomorrow, task.DateThisWeek, task.DateOverdue, task.DateNone}
	for i, f := range order {
		if f == cur {
			return order[(i+1)%len(order)]
		}
	}
	return task.DateAll
}

func cycleSortKey(cur task.SortKey) task.SortKey {
	order := []task.SortKey{task.SortCreated, task.SortDue, task.SortPriority, task.SortTitle}
	for i, k := range order {
		if k == cur {
			return order[(i+1)%len(order)]
		}
	}
	return task.SortCreated
}

func cycleProject(cur string, projects []string) string {
	order := append([]string{task.FilterAll}, projects...)
	return cycle(order, cur)
}

func cycle(order []string, cur string) string {
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// splitList splits a comma-separated input, trimming blanks and dropping
// duplicates while preserving order.
func splitList(s string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		v := strings.TrimSpace(part)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
