// Command tiresize-api serves the sizing engine over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "github.com/vladmu/tire-calculator/internal/http"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/project"
	"github.com/vladmu/tire-calculator/internal/repository"
	"github.com/vladmu/tire-calculator/internal/service"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to the JSON config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	redisAddr := flag.String("redis", "", "Redis address for the result cache (overrides config; empty = in-memory)")
	flag.Parse()

	log.SetPrefix("tiresize-api: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		log.Printf("Warning: using default config: %v", err)
		cfg = model.DefaultAppConfig()
	}
	if *addr != "" {
		cfg.APIAddr = *addr
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}

	cache := newCache(cfg)
	sizingService := service.NewSizingService(cache)
	sizingHandler := httpLayer.NewSizingHandler(sizingService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, time.Duration(cfg.RateLimitSeconds)*time.Second)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.APIAddr,
		Handler:      httpLayer.NewRouter(sizingHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.APIAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache returns a Redis cache when one is configured and reachable,
// otherwise an in-memory cache.
func newCache(cfg model.AppConfig) repository.CacheRepository {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if cfg.RedisAddr == "" {
		log.Println("Using in-memory result cache")
		return repository.NewMemoryCache(ttl)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, ttl)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: Redis at %s unreachable (%v), using in-memory cache", cfg.RedisAddr, err)
		_ = redisCache.Close()
		return repository.NewMemoryCache(ttl)
	}
	log.Printf("Using Redis result cache at %s", cfg.RedisAddr)
	return redisCache
}
