// Package api is the gateway to the task backend. It performs CRUD and
// auth calls and translates between the wire format and the in-memory
// task representation.
//
// Failures never reach callers as raw transport errors: every error is
// reduced to a human-readable message, preferring the backend-supplied one,
// then the transport error text, then a generic per-operation string.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/masrafi-000/mytaskmanager/pkg/task"
)

// Client talks to the task backend.
type Client struct {
	base  string
	http  *http.Client
	token string
	now   func() time.Time
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
		now:  time.Now,
	}
}

// SetToken sets the bearer token attached to every subsequent request.
// An empty token detaches it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SignUp registers a new account and returns the created session.
func (c *Client) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up", in, &out, "Signup failed"); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	in := loginPayload{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out, "Login failed"); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// FetchAll retrieves every task for the authenticated user.
func (c *Client) FetchAll(ctx context.Context) ([]task.Task, error) {
	var out todosResponse
	if err := c.do(ctx, http.MethodGet, "/user/todo", nil, &out, "Failed to load tasks"); err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(out.Todos))
	for _, bt := range out.Todos {
		tasks = append(tasks, FromWire(bt))
	}
	return tasks, nil
}

// Create posts a new task and returns the stored version.
func (c *Client) Create(ctx context.Context, in TaskInput) (task.Task, error) {
	var out todoResponse
	if err := c.do(ctx, http.MethodPost, "/user/todo", toWire(in, c.now()), &out, "Failed to create task"); err != nil {
		return task.Task{}, err
	}
	return FromWire(out.Todo), nil
}

// Update replaces the task with the given id and returns the stored version.
func (c *Client) Update(ctx context.Context, id task.ID, in TaskInput) (task.Task, error) {
	var out todoResponse
	path := "/user/todo/" + string(id)
	if err := c.do(ctx, http.MethodPut, path, toWire(in, c.now()), &out, "Failed to update task"); err != nil {
		return task.Task{}, err
	}
	return FromWire(out.Todo), nil
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id task.ID) error {
	return c.do(ctx, http.MethodDelete, "/user/todo/"+string(id), nil, nil, "Failed to delete task")
}

// errorBody covers the two message shapes the backend responds with.
type errorBody struct {
	Message string `json:"message"`
	Err     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}, fallback string) error {
	var body *bytes.Reader
	if in != nil {
		bs, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		body = bytes.NewReader(bs)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if msg := err.Error(); msg != "" {
			return errors.New(msg)
		}
		return errors.New(fallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		switch {
		case eb.Message != "":
			return errors.New(eb.Message)
		case eb.Err.Message != "":
			return errors.New(eb.Err.Message)
		}
		return errors.New(fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.New(fallback)
	}
	return nil
}
