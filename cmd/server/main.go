package main

import (
	"io"

	"raffle/internal/config"
	"raffle/internal/handlers"
	"raffle/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// 2. Initialize logging; verbose writes to stdout
	log := logger.Init("raffle-server", cfg.Verbose, false, io.Discard)
	defer log.Close()

	gin.SetMode(cfg.Server.GinMode)

	// 3. Initialize the Raffle Service
	raffleService := services.NewRaffleService()

	// 4. Initialize the HTTP Handler and set up the Gin router
	httpHandler := handlers.NewHTTPHandler(raffleService)
	r := gin.Default()
	httpHandler.RegisterRoutes(r)

	// 5. Run the server
	logger.Infof("Server starting on http://localhost:%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
