package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/mirrorkeeper/server/internal/handlers"
	appmiddleware "github.com/mirrorkeeper/server/internal/middleware"
	"github.com/mirrorkeeper/server/internal/repository"
	"github.com/mirrorkeeper/server/internal/services"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db                 *sqlx.DB
	attestationHandler *handlers.AttestationHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера аттестаций Mirrorkeeper...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps.attestationHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	if cfg.useTLS() {
		log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	// 2. Создание репозитория, сервиса и обработчика
	attestationRepo := repository.NewPostgresAttestationRepository(deps.db)
	attestationService := services.NewAttestationService(attestationRepo)
	deps.attestationHandler = handlers.NewAttestationHandler(attestationService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(attestationHandler *handlers.AttestationHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.BodyLimit(appmiddleware.MaxAttestationBodyBytes))

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Регистрация аттестаций резервных копий
	r.Post("/backups", attestationHandler.Submit)

	return r
}
