package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"nocflow/internal/audit"
	jwttoken "nocflow/internal/jwt_token"
	"nocflow/internal/platform/config"
	"nocflow/internal/platform/httpserver"
	"nocflow/internal/platform/logger"
	platformmetrics "nocflow/internal/platform/metrics"
	"nocflow/internal/platform/postgres"
	"nocflow/internal/platform/redis"
	httptransport "nocflow/internal/transport/http"
	wizardhandler "nocflow/internal/wizard/handler"
	wizmetrics "nocflow/internal/wizard/metrics"
	"nocflow/internal/wizard/service"
	"nocflow/internal/wizard/store/draft"
	"nocflow/internal/wizard/submit"
)

const shutdownGrace = 10 * time.Second

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Draft store: Postgres when configured, then Redis, then in-memory.
	// In-memory keeps local development zero-dependency; drafts then live
	// only as long as the process.
	var drafts draft.Store
	var health func(context.Context) error

	pool, err := postgres.New(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres init failed", "error", err)
		os.Exit(1)
	}
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}

	switch {
	case pool != nil:
		defer pool.Close()
		drafts = draft.NewPostgres(pool)
		health = pool.Ping
		log.Info("draft store: postgres")
	case redisClient != nil:
		defer redisClient.Close()
		drafts = draft.NewRedis(redisClient.Client, draft.WithTTL(cfg.DraftTTL))
		health = redisClient.Health
		log.Info("draft store: redis", "ttl", cfg.DraftTTL)
	default:
		drafts = draft.NewInMemory()
		log.Warn("draft store: in-memory, drafts do not survive restarts")
	}

	// Audit trail: Kafka when brokers are configured, otherwise a no-op sink.
	var publisher audit.Publisher = audit.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := audit.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka init failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
		log.Info("audit publisher: kafka", "topic", cfg.Kafka.Topic)
	}

	submitter := submit.NewClient(cfg.SubmitEndpoint, log)
	wizards := service.New(drafts, submitter, log,
		service.WithMetrics(wizmetrics.New()),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "nocflow", "noc-portal")
	handler := wizardhandler.New(wizards, log, jwtService)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:      log,
		Metrics:     platformmetrics.New(),
		Wizard:      handler,
		HealthCheck: health,
	})
	srv := httpserver.New(cfg.Addr, router)

	worker := audit.NewWorker(publisher, wizards.Events(), log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting nocflow", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
