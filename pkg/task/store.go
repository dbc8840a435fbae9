package task

import (
	"sort"
	"time"
)

// Store holds the authoritative in-memory task list. The backend is the
// system of record; the store only mirrors state the gateway has confirmed.
//
// Every mutation is synchronous. Operations on an unknown ID are silent
// no-ops rather than errors.
type Store struct {
	tasks []Task
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the full task set. Used after a fetch.
func (s *Store) Load(tasks []Task) {
	s.tasks = append([]Task(nil), tasks...)
}

// Insert prepends a task, newest first.
func (s *Store) Insert(t Task) {
	s.tasks = append([]Task{t}, s.tasks...)
}

// Patch describes a partial update. Nil fields are left untouched; Due and
// Tags carry an explicit set flag so they can be cleared.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	Due         *time.Time
	DueSet      bool
	Tags        []string
	TagsSet     bool
	Project     *string
}

// Apply merges the patch into the task at id and stamps Updated, even when
// the patch is empty.
func (s *Store) Apply(id ID, p Patch, at time.Time) {
	i := s.index(id)
	if i < 0 {
		return
	}
	t := s.tasks[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueSet {
		t.Due = p.Due
	}
	if p.TagsSet {
		t.Tags = append([]string(nil), p.Tags...)
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	t.Updated = at
	s.tasks[i] = t
}

// Replace swaps the task at id for the given one, keeping its position.
// Used when the gateway confirms an update.
func (s *Store) Replace(id ID, t Task) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks[i] = t
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id ID) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

// RemoveMany deletes every task whose id is in ids.
func (s *Store) RemoveMany(ids []ID) {
	drop := map[ID]struct{}{}
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if _, gone := drop[t.ID]; !gone {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// ToggleCompleted flips the completion flag and stamps Updated.
func (s *Store) ToggleCompleted(id ID, at time.Time) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.tasks[i].Updated = at
}

// Tasks returns the current task set in store order. Callers must not
// mutate the returned slice.
func (s *Store) Tasks() []Task {
	return s.tasks
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id ID) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Projects returns the distinct project names in the store, sorted.
func (s *Store) Projects() []string {
	return distinct(func(t Task, collect func(string)) {
		if t.Project != "" {
			collect(t.Project)
		}
	}, s.tasks)
}

// TagNames returns the distinct tags in the store, sorted.
func (s *Store) TagNames() []string {
	return distinct(func(t Task, collect func(string)) {
		for _, tag := range t.Tags {
			collect(tag)
		}
	}, s.tasks)
}

func distinct(each func(Task, func(string)), tasks []Task) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, t := range tasks {
		each(t, func(v string) {
			if _, ok := seen[v]; ok {
				return
			}
			seen[v] = struct{}{}
			out = append(out, v)
		})
	}
	sort.Strings(out)
	return out
}

func (s *Store) index(id ID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
