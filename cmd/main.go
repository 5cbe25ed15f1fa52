package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"daily-diet/config"
	"daily-diet/controllers"
	"daily-diet/middlewares"
	"daily-diet/routes"
	"daily-diet/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	secret := []byte(cfg.TokenSecret)
	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)
	metricsSvc := services.NewMetricsService(db)

	r := routes.SetupRouter(
		controllers.NewUserController(userSvc, secret),
		controllers.NewMealController(mealSvc, metricsSvc),
		controllers.NewHealthController(db),
		middlewares.CookieAuth(userSvc, secret),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := config.CloseDB(db); err != nil {
		log.Printf("close db: %v", err)
	}
}
