package mapper

import (
	"strings"

	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/dto"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:        todo.ID,
		Title:     todo.Title,
		Desc:      todo.Description,
		Priority:  string(todo.Priority),
		Project:   todo.Project,
		Tags:      todo.Tags,
		User:      todo.UserID,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}
	if !todo.DueDate.IsZero() {
		value := todo.DueDate
		item.DueDate = &value
	}

	return item
}

func ToTodoInput(req dto.TodoPayload) domain.TodoInput {
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	return domain.TodoInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Desc,
		Priority:    priority,
		DueDate:     req.DueDate,
		Project:     strings.TrimSpace(req.Project),
		Tags:        req.Tags,
	}
}
