package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
)

const listTodosQuery = `
SELECT *
FROM todos
WHERE user_id = ?
ORDER BY created_at DESC, id;
`

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	DueDate     time.Time      `db:"due_date"`
	Project     sql.NullString `db:"project"`
	Tags        []byte         `db:"tags"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosQuery, userID); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todo, err := mapTodoRow(row)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	var row todoRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM todos WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, err
	}
	return mapTodoRow(row)
}

func (r *TodoRepository) Insert(ctx context.Context, todo domain.Todo) error {
	tags, err := marshalTags(todo.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, title, description, priority, due_date, project, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.UserID, todo.Title, nullable(todo.Description), string(todo.Priority),
		todo.DueDate, nullable(todo.Project), tags, todo.CreatedAt, todo.UpdatedAt,
	)
	return err
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) error {
	tags, err := marshalTags(todo.Tags)
	if err != nil {
		return err
	}
	// Existence is checked by the caller; MySQL reports zero affected rows
	// for a no-change update, so RowsAffected is not a not-found signal here.
	_, err = r.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, priority = ?, due_date = ?, project = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		todo.Title, nullable(todo.Description), string(todo.Priority), todo.DueDate,
		nullable(todo.Project), tags, todo.UpdatedAt, todo.ID,
	)
	return err
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func mapTodoRow(row todoRow) (domain.Todo, error) {
	todo := domain.Todo{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Priority:  domain.Priority(row.Priority),
		DueDate:   row.DueDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		todo.Description = row.Description.String
	}
	if row.Project.Valid {
		todo.Project = row.Project.String
	}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &todo.Tags); err != nil {
			return domain.Todo{}, err
		}
	}

	return todo, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	return json.Marshal(tags)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
