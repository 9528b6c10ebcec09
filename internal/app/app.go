package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/rs/cors"
	"github.com/thisistony/aucklandeats-meetup/internal/config"
	"github.com/thisistony/aucklandeats-meetup/internal/directory"
	"github.com/thisistony/aucklandeats-meetup/internal/handler"
	"github.com/thisistony/aucklandeats-meetup/internal/middleware"
	"github.com/thisistony/aucklandeats-meetup/internal/notification"
	"github.com/thisistony/aucklandeats-meetup/internal/repository"
	"github.com/thisistony/aucklandeats-meetup/internal/router"
	"github.com/thisistony/aucklandeats-meetup/internal/service"
	"github.com/thisistony/aucklandeats-meetup/internal/session"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"aucklandeats-meetup",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	restaurantRepo := repository.NewRestaurantRepo(a.db)
	timeSlotRepo := repository.NewTimeSlotRepo(a.db)
	rsvpRepo := repository.NewRSVPRepo(a.db)
	commentRepo := repository.NewCommentRepo(a.db)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(
		eventRepo, restaurantRepo, timeSlotRepo, commentRepo, userRepo,
		notifier, a.cfg.Admin.Handles, a.log,
	)
	voteService := service.NewVoteService(restaurantRepo, timeSlotRepo, userRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, userRepo)

	sessions := session.NewManager(
		a.cfg.Session.Secret,
		a.cfg.Session.CookieName,
		a.cfg.Session.TTL,
		a.cfg.Gin.Mode == "release",
	)

	redditClient := directory.NewClient(
		a.cfg.Reddit.BaseURL,
		a.cfg.Reddit.UserAgent,
		a.cfg.Reddit.Timeout,
		a.log,
	)

	h := handler.NewHandler(userService, eventService, voteService, rsvpService, redditClient, sessions)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		sessions,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      corsWrapper.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
