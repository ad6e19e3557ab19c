package main

import (
	"log"

	"github.com/hackxperience/hackxperience/db"
	"github.com/hackxperience/hackxperience/internal/auth"
	"github.com/hackxperience/hackxperience/internal/config"
	"github.com/hackxperience/hackxperience/internal/handlers"
	"github.com/hackxperience/hackxperience/internal/router"
	"github.com/hackxperience/hackxperience/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.FromEnv()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := auth.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)

	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	handlers.SetPresentationStore(store)
	handlers.SetAssetProxyUpstream(cfg.AssetProxyUpstream)
	handlers.SetCookieDomain(cfg.CookieDomain)

	r := router.NewRouter(cfg.UploadDir)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
