package http

import (
	"github.com/gin-gonic/gin"

	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/handlers"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/middleware"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	auth ports.AuthService,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	todoHandler *handlers.TodoHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	r.POST("/auth/sign-up", authHandler.SignUp)
	r.POST("/auth/login", authHandler.Login)

	todos := r.Group("/user/todo")
	todos.Use(middleware.AuthMiddleware(auth))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
