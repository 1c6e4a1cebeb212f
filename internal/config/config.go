package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv         string // "dev" veya "production"
	HTTPPort       string
	DatabaseDriver string // "sqlite" veya "postgres"
	DatabaseDSN    string
	DataDir        string // fallback snapshot dosyasının yazılacağı klasör
	JWTSecret      string
	AdminEmail     string
	AdminPassHash  string // bcrypt hash (cmd/hashpw ile üretilir)
	CORSOrigins    string
	ExchangeRate   float64 // sabit USD kuru (1 USD = ExchangeRate)
}

func Load() *Config {
	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "production"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "./data/stoktakip.db"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ExchangeRate:   getEnvFloat("EXCHANGE_RATE", 1500),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.AdminPassHash == "" {
		log.Fatal("[FATAL] ADMIN_PASSWORD_HASH tanımlanmamış! 'go run ./cmd/hashpw' ile üretebilirsin.")
	}
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		log.Fatalf("[FATAL] DATABASE_DRIVER 'sqlite' veya 'postgres' olmalı, '%s' tanınmıyor.", cfg.DatabaseDriver)
	}
	if cfg.ExchangeRate <= 0 {
		log.Fatal("[FATAL] EXCHANGE_RATE 0'dan büyük olmalıdır.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("[FATAL] %s sayısal olmalı: %v", key, err)
	}
	return f
}
