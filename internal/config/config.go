package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	APIPort      string
	MetricsPort  string
	BaseURL      string
	FetchTimeout time.Duration
	ScrapeDelay  time.Duration
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		APIPort:      getEnv("API_PORT", "8080"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		BaseURL:      getEnv("SCRAPE_BASE_URL", "https://www.amazon.com"),
		FetchTimeout: seconds(getEnv("FETCH_TIMEOUT_SECONDS", "15"), 15),
		ScrapeDelay:  seconds(getEnv("SCRAPE_DELAY_SECONDS", "2"), 2),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func seconds(v string, fallback int) time.Duration {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
