//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/masrafi-000/mytaskmanager/internal/server/adapter/db"
	httpadapter "github.com/masrafi-000/mytaskmanager/internal/server/adapter/http"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/dto"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/handlers"
	appservice "github.com/masrafi-000/mytaskmanager/internal/server/app/service"
	"github.com/masrafi-000/mytaskmanager/pkg/translator"
)

type TodosIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTodosIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TodosIntegrationSuite))
}

func (s *TodosIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  projectRoot(s.T()) + "/pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	router := gin.New()
	authService := appservice.NewAuthService(
		dbadapter.NewUserRepository(s.DB),
		dbadapter.NewSessionRepository(s.DB),
	)
	todoService := appservice.NewTodoService(dbadapter.NewTodoRepository(s.DB))
	httpadapter.RegisterRoutes(
		router,
		authService,
		handlers.NewHealthHandler(s.DB),
		handlers.NewAuthHandler(authService),
		handlers.NewTodoHandler(todoService),
	)
	s.router = router
}

func (s *TodosIntegrationSuite) signUp(name, email string) dto.AuthResponse {
	body := `{"name":"` + name + `","email":"` + email + `","password":"hunter22","repeatPassword":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var res dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func (s *TodosIntegrationSuite) createTodo(token, title string) dto.TodoResponse {
	body := `{"title":"` + title + `","priority":"high","dueDate":"2026-04-20T00:00:00Z","project":"work","tags":["a","b"]}`
	req := httptest.NewRequest(http.MethodPost, "/user/todo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var res dto.TodoResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func (s *TodosIntegrationSuite) TestCreateAndListRoundTrip() {
	auth := s.signUp("Ada", "ada@example.com")
	created := s.createTodo(auth.Token, "Ship the release")

	req := httptest.NewRequest(http.MethodGet, "/user/todo", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.TodosResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Todos, 1)
	s.Equal(created.Todo.ID, got.Todos[0].ID)
	s.Equal("Ship the release", got.Todos[0].Title)
	s.Equal("high", got.Todos[0].Priority)
	s.Equal("work", got.Todos[0].Project)
	s.Equal([]string{"a", "b"}, got.Todos[0].Tags)
}

func (s *TodosIntegrationSuite) TestUsersAreIsolated() {
	ada := s.signUp("Ada", "ada@example.com")
	bob := s.signUp("Bob", "bob@example.com")
	created := s.createTodo(ada.Token, "Private task")

	// Bob cannot see Ada's todo.
	req := httptest.NewRequest(http.MethodGet, "/user/todo", nil)
	req.Header.Set("Authorization", "Bearer "+bob.Token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.TodosResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Empty(got.Todos)

	// Bob cannot delete it either.
	req = httptest.NewRequest(http.MethodDelete, "/user/todo/"+created.Todo.ID, nil)
	req.Header.Set("Authorization", "Bearer "+bob.Token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TodosIntegrationSuite) TestUpdateAndDelete() {
	auth := s.signUp("Ada", "ada@example.com")
	created := s.createTodo(auth.Token, "Draft")

	body := `{"title":"Final","priority":"low","dueDate":"2026-05-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/user/todo/"+created.Todo.ID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	var updated dto.TodoResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("Final", updated.Todo.Title)
	s.Equal("low", updated.Todo.Priority)

	req = httptest.NewRequest(http.MethodDelete, "/user/todo/"+created.Todo.ID, nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/user/todo", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var got dto.TodosResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Empty(got.Todos)
}

func (s *TodosIntegrationSuite) TestDuplicateEmailRejected() {
	s.signUp("Ada", "ada@example.com")

	body := `{"name":"Ada2","email":"ada@example.com","password":"hunter22","repeatPassword":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
}
