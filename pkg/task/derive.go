package task

import (
	"sort"
	"strings"
	"time"

	"github.com/masrafi-000/mytaskmanager/pkg/task/date"
)

// Counts are aggregate totals computed over the unfiltered store, ignoring
// search/filter/tag state.
type Counts struct {
	All       int
	Pending   int
	Completed int
	Today     int
	Overdue   int
}

// Derive computes the ordered visible task list and the tab counts from a
// task set and the current view. It is a pure function of its inputs,
// including now: identical inputs yield identical output.
func Derive(tasks []Task, v *View, now time.Time) ([]Task, Counts) {
	visible := []Task{}
	for _, t := range tasks {
		if matches(t, v, now) {
			visible = append(visible, t)
		}
	}
	sortTasks(visible, v.SortBy, v.Order)
	return visible, count(tasks, now)
}

// matches applies the AND-combined filter pipeline, then the active tab
// refinement.
func matches(t Task, v *View, now time.Time) bool {
	if !matchesSearch(t, v.Search) {
		return false
	}
	if v.Priority != FilterAll && string(t.Priority) != v.Priority {
		return false
	}
	if v.Project != FilterAll && t.Project != v.Project {
		return false
	}
	if len(v.Tags) > 0 && !anyTag(t, v.Tags) {
		return false
	}
	if !matchesDate(t, v.DateFilter, now) {
		return false
	}
	return matchesTab(t, v.Tab, now)
}

// matchesSearch does a case-insensitive substring match against title,
// description, any tag, and the project name. An empty query matches
// everything.
func matchesSearch(t Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(t.Project), q)
}

func anyTag(t Task, tags []string) bool {
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// matchesDate applies the date filter. A task with no due date fails every
// case except DateNone and DateAll.
func matchesDate(t Task, f DateFilter, now time.Time) bool {
	switch f {
	case DateAll:
		return true
	case DateNone:
		return t.Due == nil
	}
	if t.Due == nil {
		return false
	}
	switch f {
	case DateToday:
		return date.SameDay(*t.Due, now)
	case DateTomorrow:
		return date.SameDay(*t.Due, now.AddDate(0, 0, 1))
	case DateThisWeek:
		return date.SameWeek(*t.Due, now)
	case DateOverdue:
		return date.BeforeDay(*t.Due, now) && !t.Completed
	}
	return true
}

func matchesTab(t Task, tab Tab, now time.Time) bool {
	switch tab {
	case TabPending:
		return !t.Completed
	case TabCompleted:
		return t.Completed
	case TabToday:
		return t.Due != nil && date.SameDay(*t.Due, now)
	case TabOverdue:
		return t.Due != nil && date.BeforeDay(*t.Due, now) && !t.Completed
	}
	return true
}

// sortTasks orders tasks by the chosen key, reversed for Desc. The sort is
// stable: equal keys keep their original relative order.
func sortTasks(tasks []Task, key SortKey, order SortOrder) {
	sort.SliceStable(tasks, func(i, j int) bool {
		c := compare(tasks[i], tasks[j], key)
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b Task, key SortKey) int {
	switch key {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortDue:
		// tasks without a due date sort as latest possible
		switch {
		case a.Due == nil && b.Due == nil:
			return 0
		case a.Due == nil:
			return 1
		case b.Due == nil:
			return -1
		}
		return compareTime(*a.Due, *b.Due)
	case SortPriority:
		return a.Priority.Ordinal() - b.Priority.Ordinal()
	}
	return compareTime(a.Created, b.Created)
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func count(tasks []Task, now time.Time) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
		if t.Due == nil {
			continue
		}
		if date.SameDay(*t.Due, now) {
			c.Today++
		}
		if date.BeforeDay(*t.Due, now) && !t.Completed {
			c.Overdue++
		}
	}
	return c
}
