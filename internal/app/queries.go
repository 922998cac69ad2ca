package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_inventory/internal/domain"
)

// QueryService answers the analytics reads. Aggregates go through the cache
// when one is configured; absence (ErrNotFound) is never cached.
type QueryService struct {
	repo     domain.AnalyticsRepository
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewQueryService(r domain.AnalyticsRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl, now: time.Now}
}

// WithClock replaces the source of "today" used by CurrentOrLastHotel.
func (s *QueryService) WithClock(now func() time.Time) *QueryService {
	s.now = now
	return s
}

func (s *QueryService) HighestRatedHotel(ctx context.Context) (domain.Hotel, error) {
	return cached(ctx, s, domain.KeyHighestRated, s.repo.HighestRatedHotel)
}

func (s *QueryService) TopGuest(ctx context.Context) (domain.GuestBookings, error) {
	return cached(ctx, s, domain.KeyTopGuest, s.repo.TopGuest)
}

func (s *QueryService) AverageStay(ctx context.Context) (domain.AverageStay, error) {
	return cached(ctx, s, domain.KeyAverageStay, s.repo.AverageStay)
}

func (s *QueryService) TotalPaidPerBooking(ctx context.Context) ([]domain.BookingTotal, error) {
	return cached(ctx, s, domain.KeyTotalPerBooking, s.repo.TotalPaidPerBooking)
}

func (s *QueryService) AvailableRoomCount(ctx context.Context) (domain.RoomCount, error) {
	return cached(ctx, s, domain.KeyAvailableRooms, s.repo.AvailableRoomCount)
}

// CurrentOrLastHotel depends on the guest and on today's date, so it always
// hits storage.
func (s *QueryService) CurrentOrLastHotel(ctx context.Context, guestID string) (domain.Hotel, error) {
	return s.repo.CurrentOrLastHotel(ctx, guestID, s.now())
}

func (s *QueryService) cacheEnabled() bool { return s.cache != nil && s.cacheTTL > 0 }

func cached[T any](ctx context.Context, s *QueryService, key string, load func(context.Context) (T, error)) (T, error) {
	var v T
	if s.cacheEnabled() {
		ok, err := s.cache.Get(ctx, key, &v)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		} else if ok {
			return v, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v, nil
}
