package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smartPlanner/internal/chat"
	"smartPlanner/internal/config"
	"smartPlanner/internal/handlers"
	"smartPlanner/internal/logger"
	"smartPlanner/internal/middleware"
	"smartPlanner/internal/planner"
	"smartPlanner/internal/relay"
	"smartPlanner/internal/service"
	"smartPlanner/internal/store"
	"smartPlanner/internal/store/inmemory"
	"smartPlanner/internal/store/postgres"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	storage   store.Store
	sessions  *planner.Manager
	service   handlers.Service
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	if err := a.initStorage(ctx); err != nil {
		return err
	}

	a.sessions = planner.NewManager(a.storage)
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Остановка пользовательских сессий...")
		a.sessions.Shutdown()
	})

	plannerService := service.NewPlannerService(a.storage, a.sessions)
	a.service = &plannerService

	relayClient := relay.NewClient(a.config.Relay.Endpoint, a.config.Relay.ToEmail)
	bot := chat.NewBot(relayClient)

	a.initRouter(bot)

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return nil
}

func (a *App) initStorage(ctx context.Context) error {
	switch a.config.Repository.Type {
	case "postgres":
		storage, err := postgres.New(ctx, a.config.Database.URL)
		if err != nil {
			return fmt.Errorf("подключение к postgres: %w", err)
		}

		if err := storage.Migrate(ctx); err != nil {
			storage.Close()
			return fmt.Errorf("миграции: %w", err)
		}

		a.storage = storage
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("Закрытие пула соединений postgres...")
			storage.Close()
		})

		logger.Info("Хранилище: postgres")
	case "inmemory", "":
		a.storage = inmemory.NewStorage()
		logger.Info("Хранилище: inmemory")
	default:
		return fmt.Errorf("неизвестный тип хранилища: %s", a.config.Repository.Type)
	}

	return nil
}

func (a *App) initRouter(bot *chat.Bot) {
	handler := handlers.NewPlannerHandler(a.service, bot)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RateLimit(100))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth([]byte(a.config.Auth.SigningKey)))

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", handler.PostTask) // POST /api/tasks

			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", handler.UpdateTaskByID)        // PUT /api/tasks/{id}
				r.Delete("/", handler.DeleteTaskByID)     // DELETE /api/tasks/{id}
				r.Post("/complete", handler.CompleteTask) // POST /api/tasks/{id}/complete
			})
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/today", handler.GetTodayView)       // GET /api/views/today
			r.Get("/upcoming", handler.GetUpcomingView) // GET /api/views/upcoming
			r.Get("/summary", handler.GetSummaryView)   // GET /api/views/summary
			r.Get("/progress", handler.GetProgressView) // GET /api/views/progress

			r.Route("/calendar/{year}/{month}", func(r chi.Router) {
				r.Get("/", handler.GetCalendarView) // GET /api/views/calendar/{year}/{month}
				r.Get("/{day}", handler.GetDayView) // GET /api/views/calendar/{year}/{month}/{day}
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.GetNotifications)           // GET /api/notifications
			r.Post("/read", handler.MarkNotificationsRead) // POST /api/notifications/read
			r.Delete("/", handler.ClearNotifications)      // DELETE /api/notifications
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", handler.GetProfile)    // GET /api/profile
			r.Put("/", handler.UpdateProfile) // PUT /api/profile
		})

		r.Post("/chat", handler.PostChat)     // POST /api/chat
		r.Delete("/session", handler.SignOut) // DELETE /api/session
	})

	a.router = r
}

// Run блокируется до отмены контекста, затем гасит сервер и зависимости.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("сервер: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Получен сигнал остановки, завершение...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	// в обратном порядке: кто создан последним, гасится первым
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}

	return nil
}
