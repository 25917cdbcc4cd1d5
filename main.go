package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/theleywin/talentnest/src/config"
	"github.com/theleywin/talentnest/src/controllers"
	"github.com/theleywin/talentnest/src/lib"
	"github.com/theleywin/talentnest/src/mailer"
	"github.com/theleywin/talentnest/src/middleware"
	"github.com/theleywin/talentnest/src/routes"
	"github.com/theleywin/talentnest/src/services/accounts"
	"github.com/theleywin/talentnest/src/services/connections"
	"github.com/theleywin/talentnest/src/services/effects"
	"github.com/theleywin/talentnest/src/services/notifications"
	"github.com/theleywin/talentnest/src/services/posts"
	"github.com/theleywin/talentnest/src/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := lib.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := lib.ConnectDB(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("mongo disconnect failed", slog.Any("error", err))
		}
	}()

	if err := store.Migrate(ctx, db, log); err != nil {
		return err
	}

	// Stores
	userStore := store.NewUserStore(db)
	connectionStore := store.NewConnectionStore(db)
	notificationStore := store.NewNotificationStore(db)
	postStore := store.NewPostStore(db)
	tx := store.NewTransactor(client, cfg.Mongo.Transactions)

	// Infrastructure
	mail, err := mailer.New(cfg.SMTP, log)
	if err != nil {
		return err
	}
	runner := effects.NewRunner(log, cfg.Effects.Timeout)
	tokens := lib.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Services
	notificationSvc := notifications.NewService(log, notificationStore, userStore, postStore)
	connectionSvc := connections.NewService(log, userStore, connectionStore, tx, notificationSvc, mail, runner, cfg.Server.ClientURL)
	accountSvc := accounts.NewService(log, userStore, tokens, mail, runner, cfg.Server.ClientURL)
	postSvc := posts.NewService(log, postStore, userStore, notificationSvc, mail, runner, cfg.Server.ClientURL)

	// HTTP
	app := routes.NewApp(cfg.Server, log)
	protect := middleware.ProtectRoute(accountSvc, cfg.Auth.CookieName)
	cookie := controllers.CookieConfig{
		Name:   cfg.Auth.CookieName,
		TTL:    cfg.Auth.TokenTTL,
		Secure: cfg.Auth.Secure,
	}

	routes.HealthRoutes(app, controllers.NewHealthController(func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}))
	routes.AuthRoutes(app, controllers.NewAuthController(accountSvc, cookie), protect)
	routes.UserRoutes(app, controllers.NewUserController(accountSvc), protect)
	routes.PostRoutes(app, controllers.NewPostController(postSvc), protect)
	routes.NotificationRoutes(app, controllers.NewNotificationController(notificationSvc), protect)
	routes.ConnectionRoutes(app, controllers.NewConnectionController(connectionSvc), protect)

	app.Static("/", cfg.Server.StaticDir)

	listenErr := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("port", cfg.Server.Port))
		listenErr <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Error("http shutdown failed", slog.Any("error", err))
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := runner.Wait(waitCtx); err != nil {
		log.Warn("side effects still running at shutdown", slog.Any("error", err))
	}

	return nil
}
