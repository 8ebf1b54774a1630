package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/signup/modules/signup"
	"github.com/dmitrymomot/signup/pkg/clientip"
	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/ratelimiter"
	"github.com/dmitrymomot/signup/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"signup"`
	LogLevel  string `env:"LOG_LEVEL"`
	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("signup stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	limits := ratelimiter.NewMemoryStore()
	defer limits.Close()

	bucket, err := ratelimiter.NewBucket(limits, cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router(log, reg, bucket))
}

func router(log *slog.Logger, reg *prometheus.Registry, bucket *ratelimiter.Bucket) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	svc := signup.NewService(log, signup.WithMetrics(signup.NewMetrics(reg)))
	r.Group(func(r chi.Router) {
		r.Use(ratelimiter.Middleware(bucket, clientip.GetIP))
		r.Mount("/", svc.Handle())
	})

	return r
}
