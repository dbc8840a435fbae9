package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/masrafi-000/mytaskmanager/internal/ui"
	"github.com/masrafi-000/mytaskmanager/pkg/api"
	"github.com/masrafi-000/mytaskmanager/pkg/session"
	"github.com/masrafi-000/mytaskmanager/pkg/task"
)

type screen int

const (
	screenAuth screen = iota
	screenTasks
)

// category groups operations for the error banner: the banner is cleared
// by explicit dismissal or by the next success of the same category.
type category int

const (
	catAuth category = iota
	catFetch
	catCreate
	catUpdate
	catDelete
)

// messages produced by gateway commands; the store is only mutated when
// one of the success messages arrives.
type (
	authDoneMsg     struct{ res api.AuthResult }
	todosMsg        struct{ tasks []task.Task }
	todoCreatedMsg  struct{ created task.Task }
	todoUpdatedMsg  struct {
		id     task.ID
		stored task.Task
	}
	todoDeletedMsg  struct{ id task.ID }
	// todosDeletedMsg reports a bulk delete; ids holds the confirmed
	// deletions even when a later one failed.
	todosDeletedMsg struct {
		ids []task.ID
		err error
	}
	errMsg          struct {
		cat category
		err error
	}
)

type app struct {
	client   *api.Client
	sessions *session.FileStore

	screen screen
	width  int
	height int
	sized  bool

	banner    string
	bannerCat category

	auth  authModel
	tasks tasksModel
}

func newApp(client *api.Client, sessions *session.FileStore, sess session.Session) *app {
	a := &app{
		client:   client,
		sessions: sessions,
		auth:     newAuthModel(),
		tasks:    newTasksModel(),
	}
	if sess.Valid() {
		a.screen = screenTasks
		a.tasks.user = sess.User
	}
	return a
}

func (a app) Init() tea.Cmd {
	if a.screen == screenTasks {
		return a.fetchTodos()
	}
	return nil
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tasks.resize(msg.Width, msg.Height)
		if !a.sized && a.screen == screenTasks {
			a.tasks.loading = true
		}
		a.sized = true
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case errMsg:
		a.banner = msg.err.Error()
		a.bannerCat = msg.cat
		a.tasks.loading = false
		a.tasks.form.submitting = false
		a.auth.submitting = false
		return a, nil

	case authDoneMsg:
		a.clearBanner(catAuth)
		a.auth.submitting = false
		a.client.SetToken(msg.res.Token)
		if err := a.sessions.Save(session.Session{Token: msg.res.Token, User: msg.res.User}); err != nil {
			a.banner = err.Error()
			a.bannerCat = catAuth
		}
		a.screen = screenTasks
		a.tasks.user = msg.res.User
		a.tasks.loading = true
		return a, a.fetchTodos()

	case todosMsg:
		a.clearBanner(catFetch)
		a.tasks.loading = false
		a.tasks.list.Store.Load(msg.tasks)
		a.tasks.refresh()
		return a, nil

	case todoCreatedMsg:
		a.clearBanner(catCreate)
		a.tasks.list.Store.Insert(msg.created)
		a.tasks.leaveForm()
		a.tasks.refresh()
		return a, nil

	case todoUpdatedMsg:
		a.clearBanner(catUpdate)
		// keep the local completion flag: it does not round-trip
		if prev, ok := a.tasks.list.Store.Get(msg.id); ok {
			stored := msg.stored
			stored.Completed = prev.Completed
			a.tasks.list.Store.Replace(msg.id, stored)
		}
		a.tasks.leaveForm()
		a.tasks.refresh()
		return a, nil

	case todoDeletedMsg:
		a.clearBanner(catDelete)
		a.tasks.list.Remove(msg.id)
		a.tasks.refresh()
		return a, nil

	case todosDeletedMsg:
		a.tasks.list.RemoveMany(msg.ids)
		if msg.err != nil {
			a.banner = msg.err.Error()
			a.bannerCat = catDelete
		} else {
			a.clearBanner(catDelete)
		}
		a.tasks.refresh()
		return a, nil
	}

	if a.screen == screenAuth {
		return a.updateAuth(msg)
	}
	return a.updateTasks(msg)
}

func (a app) View() string {
	if !a.sized {
		return ""
	}
	body := ""
	if a.screen == screenAuth {
		body = a.auth.view(a.width)
	} else {
		body = a.tasks.view()
	}
	if a.banner != "" {
		return ui.ErrorBanner.Render(a.banner+"  (esc to dismiss)") + "\n" + body
	}
	return body
}

func (a *app) clearBanner(cat category) {
	if a.banner != "" && a.bannerCat == cat {
		a.banner = ""
	}
}

func (a *app) dismissBanner() bool {
	if a.banner == "" {
		return false
	}
	a.banner = ""
	return true
}

// logout clears the persisted session and returns to the auth screen.
func (a *app) logout() {
	_ = a.sessions.Clear()
	a.client.SetToken("")
	a.screen = screenAuth
	a.auth = newAuthModel()
	a.tasks = newTasksModel()
	a.tasks.resize(a.width, a.height)
}

// gateway commands; each resolves to a success message or an errMsg whose
// text is already human-readable.

func (a *app) fetchTodos() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		tasks, err := client.FetchAll(context.Background())
		if err != nil {
			return errMsg{cat: catFetch, err: err}
		}
		return todosMsg{tasks: tasks}
	}
}

func (a *app) createTodo(in api.TaskInput) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		created, err := client.Create(context.Background(), in)
		if err != nil {
			return errMsg{cat: catCreate, err: err}
		}
		return todoCreatedMsg{created: created}
	}
}

func (a *app) updateTodo(id task.ID, in api.TaskInput) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		stored, err := client.Update(context.Background(), id, in)
		if err != nil {
			return errMsg{cat: catUpdate, err: err}
		}
		return todoUpdatedMsg{id: id, stored: stored}
	}
}

func (a *app) deleteTodo(id task.ID) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		if err := client.Delete(context.Background(), id); err != nil {
			return errMsg{cat: catDelete, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

// deleteTodos removes each id in turn; the first failure stops the batch,
// and the ids already deleted are still evicted from the store.
func (a *app) deleteTodos(ids []task.ID) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		deleted := []task.ID{}
		for _, id := range ids {
			if err := client.Delete(context.Background(), id); err != nil {
				return todosDeletedMsg{ids: deleted, err: err}
			}
			deleted = append(deleted, id)
		}
		return todosDeletedMsg{ids: deleted}
	}
}
