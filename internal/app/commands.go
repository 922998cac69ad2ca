package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel_inventory/internal/domain"
)

// EntityService is the write/read path for one entity type. Every write
// evicts the cached aggregates that depend on the table before returning,
// so the next analytics read goes to storage.
type EntityService[T any] struct {
	store       domain.Store[T]
	cache       domain.Cache
	invalidates []string
	newID       func() string
}

func NewEntityService[T any](store domain.Store[T], cache domain.Cache, invalidates ...string) *EntityService[T] {
	return &EntityService[T]{store: store, cache: cache, invalidates: invalidates, newID: uuid.NewString}
}

func NewHotelService(s domain.Store[domain.Hotel], c domain.Cache) *EntityService[domain.Hotel] {
	return NewEntityService(s, c, domain.KeyHighestRated)
}

func NewRoomService(s domain.Store[domain.Room], c domain.Cache) *EntityService[domain.Room] {
	return NewEntityService(s, c, domain.KeyAvailableRooms)
}

func NewGuestService(s domain.Store[domain.Guest], c domain.Cache) *EntityService[domain.Guest] {
	return NewEntityService(s, c, domain.KeyTopGuest)
}

func NewBookingService(s domain.Store[domain.Booking], c domain.Cache) *EntityService[domain.Booking] {
	return NewEntityService(s, c, domain.KeyTopGuest, domain.KeyAverageStay)
}

func NewPaymentService(s domain.Store[domain.Payment], c domain.Cache) *EntityService[domain.Payment] {
	return NewEntityService(s, c, domain.KeyTotalPerBooking)
}

// Create stores v under a freshly generated id and returns it. Any id
// carried by v is ignored.
func (s *EntityService[T]) Create(ctx context.Context, v T) (string, error) {
	id := s.newID()
	if err := s.store.Insert(ctx, id, v); err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *EntityService[T]) Get(ctx context.Context, id string) (T, error) {
	return s.store.Get(ctx, id)
}

func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	return s.store.List(ctx)
}

func (s *EntityService[T]) Update(ctx context.Context, id string, v T) error {
	if err := s.store.Update(ctx, id, v); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *EntityService[T]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *EntityService[T]) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, key := range s.invalidates {
		if err := s.cache.Del(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
		}
	}
}
