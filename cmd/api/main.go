package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"smartPlanner/internal/app"
	"smartPlanner/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg)
	if err := application.Init(ctx); err != nil {
		log.Fatalf("инициализация: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("сервер: %v", err)
	}
}
