package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"amzdeals/internal/api"
	"amzdeals/internal/cache"
	"amzdeals/internal/config"
	"amzdeals/internal/db"
	"amzdeals/internal/observability"
	"amzdeals/internal/repository"
)

func main() {
	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no Postgres (pgxpool): %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("Erro ao conectar no Postgres (pgxpool): %v", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	handler := &api.Handler{
		Store: &repository.ProductRepository{DB: pool},
		Cache: &cache.ListCache{Client: redisClient, TTL: 5 * time.Minute},
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{http.MethodGet},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("API de produtos rodando :%s", cfg.APIPort)
	if err := http.ListenAndServe(":"+cfg.APIPort, c.Handler(handler.Routes())); err != nil {
		log.Fatalf("Erro no servidor HTTP: %v", err)
	}
}
