package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wookporium/config"
	"wookporium/internal/api"
	"wookporium/internal/broker"
	"wookporium/internal/cms"
	"wookporium/internal/orders"
	"wookporium/internal/store"
	"wookporium/internal/storecache"
	"wookporium/internal/util"
	"wookporium/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting storefront service")

	tp, err := util.InitTracer("storefront", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	cache, err := storecache.NewCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()
	log.Println("Redis connected")

	contentProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicContent)
	defer contentProducer.Close()
	orderProducer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrders)
	defer orderProducer.Close()
	log.Println("Kafka producers initialized")

	eventPublisher := broker.NewEventPublisher(contentProducer, orderProducer)

	contentClient := cms.NewClient(cms.ClientConfig{
		ProjectID:  cfg.Content.ProjectID,
		Dataset:    cfg.Content.Dataset,
		APIVersion: cfg.Content.APIVersion,
		Token:      cfg.Content.Token,
		UseCDN:     cfg.Content.UseCDN,
		Timeout:    time.Duration(cfg.Content.TimeoutSeconds) * time.Second,
	})
	contentService := cms.NewService(contentClient, cache,
		time.Duration(cfg.Content.CacheTTLSeconds)*time.Second)

	orderService := orders.NewService(db, cache, eventPublisher)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	contentConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicContent, cfg.Kafka.ConsumerGroup)
	contentWorker := worker.NewContentWorker(contentConsumer, contentService)
	go func() {
		if err := contentWorker.Start(workerCtx); err != nil {
			log.Printf("Content worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(contentService, orderService, eventPublisher, cfg.Server.SiteURL)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	contentWorker.Stop()

	log.Println("Server exited")
}
