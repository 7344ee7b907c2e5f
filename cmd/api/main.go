package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/tabibi-api/internal/cache"
	"github.com/harentsoaR/tabibi-api/internal/config"
	"github.com/harentsoaR/tabibi-api/internal/handlers"
	"github.com/harentsoaR/tabibi-api/internal/logger"
	"github.com/harentsoaR/tabibi-api/internal/middleware"
	"github.com/harentsoaR/tabibi-api/internal/services"
	"github.com/harentsoaR/tabibi-api/internal/store"
	"github.com/harentsoaR/tabibi-api/internal/utils"
)

func main() {
	// Load reads .env first so LOG_LEVEL and LOG_FORMAT from it apply.
	cfg, err := config.Load()
	log := logger.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().
		Str("port", cfg.Port).
		Str("db_driver", cfg.DBDriver).
		Bool("cache", cfg.RedisURL != "").
		Dur("jwt_ttl", cfg.JWTTTL).
		Msg("configuration loaded")

	// --- Database Connection ---
	st, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()
	log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	// --- Directory cache ---
	var listing services.ListingCache
	if cfg.RedisURL != "" {
		rdb, err := connectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		listing = cache.NewDirectoryCache(rdb, cfg.DirectoryCacheTTL)
		log.Info().Dur("ttl", cfg.DirectoryCacheTTL).Msg("directory cache enabled")
	}

	jwt, err := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("jwt")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	done := make(chan struct{})
	defer close(done)
	go limiter.Run(done, time.Minute)

	// --- Initialize Handlers with DB and Services ---
	dir := services.NewDirectory(st, listing, log)
	h := handlers.NewHandler(st, dir, jwt, metrics, log)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(h, handlers.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: limiter,
		Gatherer:    reg,
		WebDir:      cfg.WebDir,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func openStore(cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	if cfg.DBDriver == "mongo" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	return store.OpenGorm(cfg.DBDriver, cfg.DatabaseURL, log)
}

func connectRedis(url string) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return cache.Connect(ctx, url)
}
