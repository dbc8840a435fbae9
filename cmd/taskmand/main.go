package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/masrafi-000/mytaskmanager/internal/server/adapter/db"
	httpadapter "github.com/masrafi-000/mytaskmanager/internal/server/adapter/http"
	"github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/handlers"
	httpmiddleware "github.com/masrafi-000/mytaskmanager/internal/server/adapter/http/middleware"
	"github.com/masrafi-000/mytaskmanager/internal/server/app/service"
	"github.com/masrafi-000/mytaskmanager/internal/server/config"
	"github.com/masrafi-000/mytaskmanager/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	authService := service.NewAuthService(
		dbadapter.NewUserRepository(db),
		dbadapter.NewSessionRepository(db),
	)
	todoService := service.NewTodoService(dbadapter.NewTodoRepository(db))

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(
		r,
		authService,
		handlers.NewHealthHandler(db),
		handlers.NewAuthHandler(authService),
		handlers.NewTodoHandler(todoService),
	)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
