package main

import (
	"log"

	"storefront/config"
	"storefront/controllers"
	"storefront/routes"
	"storefront/storage"
	"storefront/utils"
)

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Open the configured storage backend
	store, err := storage.New(cfg)
	if err != nil {
		utils.LogError("Failed to open storage: %v", err)
		log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()

	// Wire controllers to storage and config
	if err := controllers.Init(store, cfg); err != nil {
		utils.LogError("Failed to initialize controllers: %v", err)
		log.Fatal("Failed to initialize controllers:", err)
	}

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s in %s storage mode", cfg.Port, cfg.StorageMode)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
