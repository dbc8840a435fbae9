package task

// Tab is one of the top-level task list tabs.
type Tab string

const (
	TabAll       Tab = "all"
	TabPending   Tab = "pending"
	TabCompleted Tab = "completed"
	TabToday     Tab = "today"
	TabOverdue   Tab = "overdue"
)

// SortKey selects the sort comparator.
type SortKey string

const (
	SortCreated  SortKey = "created_at"
	SortDue      SortKey = "due_date"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
)

// SortOrder is the comparator direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// DateFilter constrains tasks by their due date's calendar day.
type DateFilter string

const (
	DateAll      DateFilter = "all"
	DateToday    DateFilter = "today"
	DateTomorrow DateFilter = "tomorrow"
	DateThisWeek DateFilter = "this-week"
	DateOverdue  DateFilter = "overdue"
	DateNone     DateFilter = "no-date"
)

// FilterAll is the wildcard value for the priority and project filters.
const FilterAll = "all"

// View holds the user's filter, search, sort, and selection criteria,
// independent of task data. It is created with defaults at session start,
// mutated only by explicit intents, and never persisted.
type View struct {
	Search     string
	Priority   string // FilterAll or a Priority value
	Project    string // FilterAll or an exact project name
	Tags       []string
	Tab        Tab
	SortBy     SortKey
	Order      SortOrder
	DateFilter DateFilter

	selected map[ID]struct{}
}

func NewView() *View {
	return &View{
		Priority:   FilterAll,
		Project:    FilterAll,
		Tab:        TabAll,
		SortBy:     SortCreated,
		Order:      Desc,
		DateFilter: DateAll,
		selected:   map[ID]struct{}{},
	}
}

// Setters replace the field unconditionally; there is no validation beyond
// the type.

func (v *View) SetSearch(q string)         { v.Search = q }
func (v *View) SetPriority(p string)       { v.Priority = p }
func (v *View) SetProject(p string)        { v.Project = p }
func (v *View) SetTags(tags []string)      { v.Tags = tags }
func (v *View) SetTab(t Tab)               { v.Tab = t }
func (v *View) SetSortBy(k SortKey)        { v.SortBy = k }
func (v *View) SetOrder(o SortOrder)       { v.Order = o }
func (v *View) SetDateFilter(f DateFilter) { v.DateFilter = f }

// ToggleSelected adds the id to the selection if absent, removes it if
// present.
func (v *View) ToggleSelected(id ID) {
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
		return
	}
	v.selected[id] = struct{}{}
}

// SelectAll replaces the selection with exactly the given ids. Callers pass
// the currently visible ids so "select all" respects active filters.
func (v *View) SelectAll(ids []ID) {
	v.selected = make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		v.selected[id] = struct{}{}
	}
}

// ClearSelection empties the selection.
func (v *View) ClearSelection() {
	v.selected = map[ID]struct{}{}
}

// Unselect removes the given ids from the selection if present.
func (v *View) Unselect(ids ...ID) {
	for _, id := range ids {
		delete(v.selected, id)
	}
}

func (v *View) IsSelected(id ID) bool {
	_, ok := v.selected[id]
	return ok
}

func (v *View) SelectionSize() int {
	return len(v.selected)
}

// Selected returns the selected ids in unspecified order.
func (v *View) Selected() []ID {
	out := make([]ID, 0, len(v.selected))
	for id := range v.selected {
		out = append(out, id)
	}
	return out
}
