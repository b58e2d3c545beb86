package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"kard-tasks/kard/broker"
	"kard-tasks/kard/config"
	"kard-tasks/kard/database"
	"kard-tasks/kard/routes"
	"kard-tasks/kard/services"
	"kard-tasks/kard/web"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set, login and authenticated routes will answer 500")
	}

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	publisher := broker.NewPublisher(cfg.NATSURL)
	defer publisher.Close()

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours, cfg.BcryptCost)
	userService := services.NewUserService(authService, publisher)
	activityService := services.NewActivityService(publisher, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := routes.NewRouter(ctx, cfg, db, routes.Services{
		Auth:     authService,
		User:     userService,
		Activity: activityService,
	}, web.Static())

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("API server is running on port %s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
