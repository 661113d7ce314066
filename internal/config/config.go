package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	DocsDir  string // verification document bucket on disk
	MediaDir string // public product/artisan images
	LogFile  string
}

func Load() Config {
	// .env is optional; real environments set vars directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:     getenv("PORT", "8080"),
		DBDSN:    getenv("DB_DSN", "haven.db"),
		DocsDir:  getenv("DOCS_DIR", "./seller-docs"),
		MediaDir: getenv("MEDIA_DIR", "./web/media"),
		LogFile:  getenv("LOG_FILE", "./haven.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s DOCS_DIR=%s MEDIA_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.DocsDir, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
