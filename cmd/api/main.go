package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "hotel_inventory/internal/adapters/http_server"
	"hotel_inventory/internal/adapters/observability"
	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/shared"
	"hotel_inventory/internal/storage/sqlrepo"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db: open + create schema; the service cannot start without it
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	h, err := sqlrepo.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init failed")
	}
	defer h.Close()
	log.Info().Str("driver", h.Dialect.Driver).Msg("database ready")

	// deps
	repo := sqlrepo.New(h)
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; reads fall through to the database")
		}
		defer rc.Close()
		cache = rc
	}

	handlers := &server.Handlers{
		Hotels:   app.NewHotelService(repo.Hotels, cache),
		Rooms:    app.NewRoomService(repo.Rooms, cache),
		Guests:   app.NewGuestService(repo.Guests, cache),
		Bookings: app.NewBookingService(repo.Bookings, cache),
		Payments: app.NewPaymentService(repo.Payments, cache),
		Q:        app.NewQueryService(repo, cache, cfg.CacheTTL),
	}

	// http
	srv := server.New(server.Options{
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(handlers)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
