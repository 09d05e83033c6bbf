package main

import (
	"log"

	"github.com/mkravets/marketpulse/config"
	"github.com/mkravets/marketpulse/routes"
	"github.com/mkravets/marketpulse/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Route per-query log lines through the debug logger
	config.SetQueryLogger(utils.LogDebug)

	// Initialize database
	config.InitDB()

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
