package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/dto"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/mapper"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/middleware"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
	"github.com/masrafi-000/mytaskmanager/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	todos, err := h.todoService.List(c.Request.Context(), user.ID)
	if err != nil {
		zap.L().Error("failed to list todos", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TodosResponse{Todos: mapper.ToTodoItems(todos)})
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	req, ok := bindTodoPayload(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), user.ID, mapper.ToTodoInput(req))
	if err != nil {
		zap.L().Error("failed to create todo", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TodoResponse{Todo: mapper.ToTodoItem(todo)})
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)
	id := c.Param("id")

	req, ok := bindTodoPayload(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), user.ID, id, mapper.ToTodoInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update todo", zap.String("todo_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TodoResponse{Todo: mapper.ToTodoItem(todo)})
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)
	id := c.Param("id")

	if err := h.todoService.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete todo", zap.String("todo_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTodo, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindTodoPayload(c *gin.Context, lang string) (dto.TodoPayload, bool) {
	var req dto.TodoPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return dto.TodoPayload{}, false
	}
	return req, true
}
