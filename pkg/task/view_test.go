package task

import (
	"testing"

	"github.com/matryer/is"
)

func TestView_Defaults(t *testing.T) {
	is := is.New(t)

	v := NewView()
	is.Equal(v.Search, "")
	is.Equal(v.Priority, FilterAll)
	is.Equal(v.Project, FilterAll)
	is.Equal(len(v.Tags), 0)
	is.Equal(v.Tab, TabAll)
	is.Equal(v.SortBy, SortCreated)
	is.Equal(v.Order, Desc)
	is.Equal(v.DateFilter, DateAll)
	is.Equal(v.SelectionSize(), 0)
}

func TestView_Setters(t *testing.T) {
	is := is.New(t)

	v := NewView()
	v.SetSearch("milk")
	v.SetPriority(string(High))
	v.SetProject("home")
	v.SetTags([]string{"urgent"})
	v.SetTab(TabOverdue)
	v.SetSortBy(SortTitle)
	v.SetOrder(Asc)
	v.SetDateFilter(DateThisWeek)

	is.Equal(v.Search, "milk")
	is.Equal(v.Priority, "high")
	is.Equal(v.Project, "home")
	is.Equal(v.Tags, []string{"urgent"})
	is.Equal(v.Tab, TabOverdue)
	is.Equal(v.SortBy, SortTitle)
	is.Equal(v.Order, Asc)
	is.Equal(v.DateFilter, DateThisWeek)
}

func TestView_Selection(t *testing.T) {
	t.Run("toggle adds and removes", func(t *testing.T) {
		is := is.New(t)
		v := NewView()
		v.ToggleSelected("a")
		is.True(v.IsSelected("a"))
		v.ToggleSelected("a")
		is.True(!v.IsSelected("a"))
	})

	t.Run("select all replaces the set", func(t *testing.T) {
		is := is.New(t)
		v := NewView()
		v.ToggleSelected("stale")
		v.SelectAll([]ID{"a", "b"})
		is.True(!v.IsSelected("stale"))
		is.True(v.IsSelected("a"))
		is.True(v.IsSelected("b"))
		is.Equal(v.SelectionSize(), 2)
	})

	t.Run("clear empties", func(t *testing.T) {
		is := is.New(t)
		v := NewView()
		v.SelectAll([]ID{"a", "b"})
		v.ClearSelection()
		is.Equal(v.SelectionSize(), 0)
	})
}
