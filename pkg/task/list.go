package task

// List couples a Store with the View whose selection refers into it, so
// that deletes keep the two consistent: the selection never references a
// deleted task.
type List struct {
	Store *Store
	View  *View
}

func NewList() *List {
	return &List{Store: NewStore(), View: NewView()}
}

// Remove deletes one task and evicts it from the selection.
func (l *List) Remove(id ID) {
	l.Store.Remove(id)
	l.View.Unselect(id)
}

// RemoveMany deletes the given tasks and evicts them from the selection.
func (l *List) RemoveMany(ids []ID) {
	l.Store.RemoveMany(ids)
	l.View.Unselect(ids...)
}
