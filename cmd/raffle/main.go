package main

import (
	"os"

	"raffle/internal/console"
	"raffle/internal/services"

	"github.com/google/logger"
)

func main() {
	// Engine logs go to stderr so they don't interleave with the menu.
	log := logger.Init("raffle", false, false, os.Stderr)
	defer log.Close()

	raffleService := services.NewRaffleService()
	console.New(raffleService, os.Stdin, os.Stdout).Run()
}
