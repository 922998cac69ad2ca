package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_inventory/internal/adapters/observability"
	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/shared"
	"hotel_inventory/internal/storage/sqlrepo"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("driver", cfg.DBDriver).
		Int("hotels", cfg.SeedHotels).
		Int("guests", cfg.SeedGuests).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	h, err := sqlrepo.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer h.Close()
	repo := sqlrepo.New(h)

	// evict the API's cached aggregates as rows land
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	seeder := &app.Seeder{
		Hotels:           app.NewHotelService(repo.Hotels, cache),
		Rooms:            app.NewRoomService(repo.Rooms, cache),
		Guests:           app.NewGuestService(repo.Guests, cache),
		Bookings:         app.NewBookingService(repo.Bookings, cache),
		Payments:         app.NewPaymentService(repo.Payments, cache),
		RoomsPerHotel:    6,
		BookingsPerHotel: 8,
	}

	guestIDs, err := seeder.SeedGuests(ctx, cfg.SeedGuests)
	if err != nil {
		log.Fatal().Err(err).Msg("guest seeding failed")
	}
	log.Info().Int("guests", len(guestIDs)).Msg("guests seeded")

	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for n := 1; n <= cfg.SeedHotels; n++ {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer sem.Release(1)

			// concurrent SQLite writers can fail with "database is locked"; no retry
			id, err := seeder.SeedHotel(ctx, n, guestIDs)
			if err != nil {
				failed.Add(1)
				log.Warn().Int("n", n).Err(err).Msg("seed hotel failed")
				return
			}
			log.Info().Int("n", n).Str("id", id).Msg("seed hotel ok")
		}(n)
	}

	wg.Wait()
	log.Info().Int64("failed", failed.Load()).Msg("seeding completed")
}
