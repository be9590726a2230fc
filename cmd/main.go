package main

import (
	"log"

	"github.com/fatemaDiba/BiteShare-backend/internal/app"
	"github.com/fatemaDiba/BiteShare-backend/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	application.Run()
}
