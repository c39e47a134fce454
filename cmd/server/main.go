package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"onelastevent/config"
	"onelastevent/internal/cache"
	"onelastevent/internal/database"
	"onelastevent/internal/handler"
	"onelastevent/internal/mailer"
	"onelastevent/internal/notification"
	"onelastevent/internal/payment"
	"onelastevent/internal/queue"
	"onelastevent/internal/repository"
	"onelastevent/internal/service"
	"onelastevent/internal/worker"
	"onelastevent/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.L.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	txManager := database.NewPgxTxManager(pool)
	eventRepo := repository.NewEventRepository(pool)
	inscriptionRepo := repository.NewInscriptionRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	dedup := cache.NewRedisWebhookDedup(rdb, 0)

	notificationQueue, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize notification queue: %v", err)
	}
	notifier := notification.NewQueueNotifier(notificationQueue)

	notificationWorker := worker.NewNotificationWorker(notificationQueue, userRepo, mailer.NewLogMailer())
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	if cfg.Payment.Provider != payment.ProviderMock {
		logger.L.Warn("unsupported payment provider, falling back to mock",
			zap.String("provider", cfg.Payment.Provider))
	}
	processor := payment.NewMockProcessor()

	eventService := service.NewEventService(txManager, eventRepo, inscriptionRepo, notifier)
	inscriptionService := service.NewInscriptionService(txManager, eventRepo, inscriptionRepo, paymentRepo, processor, notifier)
	paymentService := service.NewPaymentService(txManager, eventRepo, inscriptionRepo, paymentRepo, processor, dedup, notifier)
	registrationService := service.NewRegistrationService(eventRepo, inscriptionService, paymentService)

	router := gin.New()
	router.Use(gin.Recovery(), handler.IdentityMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewInscriptionHandler(registrationService, inscriptionService).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.L.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.L.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("graceful shutdown failed", zap.Error(err))
	}
}
