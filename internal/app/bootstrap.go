package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sendbol/videoshop-catalog/config"
	rediscache "github.com/sendbol/videoshop-catalog/internal/cache/redis"
	"github.com/sendbol/videoshop-catalog/internal/domain"
	"github.com/sendbol/videoshop-catalog/internal/kafka"
	"github.com/sendbol/videoshop-catalog/internal/ports"
	"github.com/sendbol/videoshop-catalog/internal/repo/postgres"
	rest "github.com/sendbol/videoshop-catalog/internal/transport/http"
	"github.com/sendbol/videoshop-catalog/internal/usecase"
	"github.com/sendbol/videoshop-catalog/pkg/logger"
	"github.com/sendbol/videoshop-catalog/pkg/metrics"
	"github.com/sendbol/videoshop-catalog/pkg/telemetry"
	"github.com/sendbol/videoshop-catalog/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	MetricsServer   *http.Server          // отдельный слушатель /metrics для Prometheus
	KafkaConsumer   ports.MessageConsumer // консьюмер событий метрик
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Клиент Redis: hash-зеркала коллекций и ZSET-индексы ранжирования.
	redisClient, err := rediscache.NewClient(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка доменного слоя: хранилище, зеркала, индекс, сервисы.
	productRepo := postgres.NewProductRepository(pool)
	productMirror := rediscache.NewMirror[domain.Product](redisClient, "products", rediscache.ProductCodec{})
	ranking := rediscache.NewRankingIndex(redisClient)

	catalogService := usecase.NewCatalogService(
		productRepo,
		productMirror,
		ranking,
		logg,
		validate.NewProductValidator(),
		validate.NewMetricEventValidator(),
		cfg.Catalog.RankingFetchLimit,
	)

	categoryService := usecase.NewReferenceService[domain.Category](
		postgres.NewCategoryRepository(pool),
		rediscache.NewMirror[domain.Category](redisClient, "categories", rediscache.CategoryCodec{}),
		logg, "categories",
		func(v *domain.Category) string { return v.Title },
		func(v *domain.Category, id string) {
			if v.ID == "" {
				v.ID = id
			}
		},
	)
	platformService := usecase.NewReferenceService[domain.Platform](
		postgres.NewPlatformRepository(pool),
		rediscache.NewMirror[domain.Platform](redisClient, "platforms", rediscache.PlatformCodec{}),
		logg, "platforms",
		func(v *domain.Platform) string { return v.Title },
		func(v *domain.Platform, id string) {
			if v.ID == "" {
				v.ID = id
			}
		},
	)
	tagService := usecase.NewReferenceService[domain.Tag](
		postgres.NewTagRepository(pool),
		rediscache.NewMirror[domain.Tag](redisClient, "tags", rediscache.TagCodec{}),
		logg, "tags",
		func(v *domain.Tag) string { return v.Title },
		func(v *domain.Tag, id string) {
			if v.ID == "" {
				v.ID = id
			}
		},
	)
	chiptagService := usecase.NewReferenceService[domain.Chiptag](
		postgres.NewChiptagRepository(pool),
		rediscache.NewMirror[domain.Chiptag](redisClient, "chiptags", rediscache.ChiptagCodec{}),
		logg, "chiptags",
		func(v *domain.Chiptag) string { return v.Title },
		func(v *domain.Chiptag, id string) {
			if v.ID == "" {
				v.ID = id
			}
		},
	)

	// Прогрев зеркала и индексов (опционально; пустая БД — не ошибка).
	if cfg.Catalog.WarmOnStart {
		if err := catalogService.WarmUp(ctx); err != nil {
			logg.Warnf(ctx, "catalog warm-up failed: %v", err)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(catalogService, categoryService, platformService, tagService, chiptagService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, "./web", otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Отдельный слушатель метрик: Prometheus скребёт его, не трогая основной порт.
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsMux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	// Конфигурация и создание консьюмера Kafka.
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, catalogService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		if err := redisClient.Close(); err != nil {
			logg.Warnf(ctx, "redis client close error: %v", err)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Запуск слушателя метрик.
	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера.
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
