package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/masrafi-000/mytaskmanager/pkg/task"
)

func TestClient_FetchAll(t *testing.T) {
	is := is.New(t)

	due := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodGet)
		is.Equal(r.URL.Path, "/user/todo")
		is.Equal(r.Header.Get("Authorization"), "Bearer tok123")
		json.NewEncoder(w).Encode(todosResponse{Todos: []BackendTask{{
			ID:        "id1",
			Title:     "Groceries",
			Desc:      "milk and eggs",
			Priority:  "high",
			DueDate:   &due,
			Project:   "home",
			Tags:      []string{"errand"},
			CreatedAt: created,
			UpdatedAt: created,
		}}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok123")

	tasks, err := c.FetchAll(context.Background())
	is.NoErr(err)
	is.Equal(len(tasks), 1)

	got := tasks[0]
	is.Equal(got.ID, task.ID("id1"))
	is.Equal(got.Title, "Groceries")
	is.Equal(got.Description, "milk and eggs")
	is.Equal(got.Priority, task.High)
	is.Equal(*got.Due, due)
	is.Equal(got.Project, "home")
	is.Equal(got.Tags, []string{"errand"})
	is.True(!got.Completed) // fetched tasks are always presented incomplete
}

// echoes the create payload back as the stored todo, the way the backend
// does, so the test covers the full wire round-trip.
func echoTodoServer(t *testing.T, wantMethod, wantPath string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := is.New(t)
		is.Equal(r.Method, wantMethod)
		is.Equal(r.URL.Path, wantPath)

		var payload map[string]json.RawMessage
		is.NoErr(json.NewDecoder(r.Body).Decode(&payload))

		bt := BackendTask{ID: "stored", User: "u1", CreatedAt: time.Now(), UpdatedAt: time.Now()}
		json.Unmarshal(payload["title"], &bt.Title)
		json.Unmarshal(payload["desc"], &bt.Desc)
		json.Unmarshal(payload["priority"], &bt.Priority)
		json.Unmarshal(payload["project"], &bt.Project)
		json.Unmarshal(payload["tags"], &bt.Tags)
		var due time.Time
		json.Unmarshal(payload["dueDate"], &due)
		bt.DueDate = &due

		if wantMethod == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}
		json.NewEncoder(w).Encode(todoResponse{Todo: bt})
	}))
}

func TestClient_CreateRoundTrip(t *testing.T) {
	is := is.New(t)

	srv := echoTodoServer(t, http.MethodPost, "/user/todo")
	defer srv.Close()

	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	in := TaskInput{
		Title:       "Write report",
		Description: "quarterly numbers",
		Priority:    task.Medium,
		Due:         &due,
		Project:     "work",
		Tags:        []string{"office", "writing"},
	}

	c := New(srv.URL)
	got, err := c.Create(context.Background(), in)
	is.NoErr(err)

	// title, priority, tags, project and due date survive the round-trip
	is.Equal(got.Title, in.Title)
	is.Equal(got.Description, in.Description)
	is.Equal(got.Priority, in.Priority)
	is.Equal(got.Tags, in.Tags)
	is.Equal(got.Project, in.Project)
	is.Equal(got.Due.UTC(), due)
	// completion does not round-trip
	is.True(!got.Completed)
}

func TestClient_CreateDefaultsDueDateToNow(t *testing.T) {
	is := is.New(t)

	srv := echoTodoServer(t, http.MethodPost, "/user/todo")
	defer srv.Close()

	fixed := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	c := New(srv.URL)
	c.now = func() time.Time { return fixed }

	got, err := c.Create(context.Background(), TaskInput{Title: "No date", Priority: task.Low})
	is.NoErr(err)
	is.Equal(got.Due.UTC(), fixed)
}

func TestClient_Update(t *testing.T) {
	is := is.New(t)

	srv := echoTodoServer(t, http.MethodPut, "/user/todo/abc")
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.Update(context.Background(), "abc", TaskInput{Title: "Renamed", Priority: task.High})
	is.NoErr(err)
	is.Equal(got.Title, "Renamed")
}

func TestClient_Delete(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodDelete)
		is.Equal(r.URL.Path, "/user/todo/abc")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	is.NoErr(c.Delete(context.Background(), "abc"))
}

func TestClient_Auth(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/sign-up":
			var in SignUpInput
			is.NoErr(json.NewDecoder(r.Body).Decode(&in))
			is.Equal(in.RepeatPassword, "hunter22")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(AuthResult{
				User:  User{ID: "u1", Name: in.Name, Email: in.Email},
				Token: "tok-signup",
			})
		case "/auth/login":
			json.NewEncoder(w).Encode(AuthResult{
				User:  User{ID: "u1", Name: "Dana", Email: "dana@example.com"},
				Token: "tok-login",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	signup, err := c.SignUp(context.Background(), SignUpInput{
		Name: "Dana", Email: "dana@example.com",
		Password: "hunter22", RepeatPassword: "hunter22",
	})
	is.NoErr(err)
	is.Equal(signup.Token, "tok-signup")

	login, err := c.Login(context.Background(), "dana@example.com", "hunter22")
	is.NoErr(err)
	is.Equal(login.Token, "tok-login")
	is.Equal(login.User.Name, "Dana")
}

func TestClient_ErrorReduction(t *testing.T) {
	t.Run("prefers backend message", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
		}))
		defer srv.Close()

		_, err := New(srv.URL).Login(context.Background(), "x", "y")
		is.True(err != nil)
		is.Equal(err.Error(), "Invalid credentials")
	})

	t.Run("reads nested error shape", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"Task not found"}}`))
		}))
		defer srv.Close()

		err := New(srv.URL).Delete(context.Background(), "nope")
		is.True(err != nil)
		is.Equal(err.Error(), "Task not found")
	})

	t.Run("falls back to the generic per-operation string", func(t *testing.T) {
		is := is.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := New(srv.URL).FetchAll(context.Background())
		is.True(err != nil)
		is.Equal(err.Error(), "Failed to load tasks")
	})

	t.Run("network failure surfaces the transport message", func(t *testing.T) {
		is := is.New(t)
		c := New("http://127.0.0.1:1") // nothing listens here
		_, err := c.FetchAll(context.Background())
		is.True(err != nil)
		is.True(err.Error() != "")
	})
}
