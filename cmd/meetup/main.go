package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/thisistony/aucklandeats-meetup/internal/app"
	"github.com/thisistony/aucklandeats-meetup/internal/config"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
