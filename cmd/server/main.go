package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estate-crm/config"
	"estate-crm/internal/handlers"
	"estate-crm/internal/middleware"
	"estate-crm/internal/repository"
	"estate-crm/internal/routes"
	"estate-crm/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("Файл .env не найден, используем переменные окружения")
	}

	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(&models.User{}, &models.Property{}, &models.Transaction{}); err != nil {
		slog.Error("Ошибка миграции схемы", "error", err)
		os.Exit(1)
	}

	rdb := config.ConnectRedis(cfg)

	auth := middleware.NewAuthenticator(db, rdb, cfg.JWTSecret)

	r := gin.Default()
	routes.SetupRoutes(r, auth, routes.Handlers{
		Auth:        handlers.NewAuthHandler(db, cfg),
		Property:    handlers.NewPropertyHandler(repository.NewPropertyRepository(db)),
		Transaction: handlers.NewTransactionHandler(repository.NewTransactionRepository(db)),
		Report:      handlers.NewReportHandler(repository.NewReportEngine(db)),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Сервер запущен", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Сервер остановился с ошибкой", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Ошибка остановки сервера", "error", err)
	}
	slog.Info("Сервер остановлен")
}
