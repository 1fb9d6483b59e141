package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
	"github.com/MiniPekkaaa/MiniApp/internal/cart"
	"github.com/MiniPekkaaa/MiniApp/internal/catalog"
	"github.com/MiniPekkaaa/MiniApp/internal/config"
	h "github.com/MiniPekkaaa/MiniApp/internal/http"
	"github.com/MiniPekkaaa/MiniApp/internal/metrics"
	"github.com/MiniPekkaaa/MiniApp/internal/notify"
	"github.com/MiniPekkaaa/MiniApp/internal/repository"
	"github.com/MiniPekkaaa/MiniApp/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Set up MongoDB connection
	mongoDB, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(ctx)

	repo := repository.NewMongoRepository(mongoDB)
	if err := repo.CreateIndexes(ctx); err != nil {
		log.Fatalf("Failed to create order indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	var notifier notify.Notifier = notify.Noop{}
	if cfg.BotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.BotToken)
		if err != nil {
			log.Fatalf("Failed to init telegram notifier: %v", err)
		}
		notifier = tg
		log.Printf("Telegram notifications enabled")
	}

	m := metrics.New()
	carts := cart.NewRedisStore(redisClient)
	checker := auth.NewRedisChecker(redisClient)
	products := catalog.NewClient(cfg.CatalogBaseURL, m)
	orders := service.NewOrderService(carts, repo, notifier, m)

	router := h.NewRouter(orders, carts, products, checker, cfg.RegisterURL, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("MiniApp server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
