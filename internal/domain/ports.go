package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks an expected absence: no row for an id, or an empty
// analytics result.
var ErrNotFound = errors.New("not found")

// Store is the CRUD capability every entity table offers.
type Store[T any] interface {
	Insert(ctx context.Context, id string, v T) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
}

type AnalyticsRepository interface {
	HighestRatedHotel(ctx context.Context) (Hotel, error)
	TopGuest(ctx context.Context) (GuestBookings, error)
	AverageStay(ctx context.Context) (AverageStay, error)
	// CurrentOrLastHotel ranks the guest's bookings against today's calendar date.
	CurrentOrLastHotel(ctx context.Context, guestID string, today time.Time) (Hotel, error)
	TotalPaidPerBooking(ctx context.Context) ([]BookingTotal, error)
	AvailableRoomCount(ctx context.Context) (RoomCount, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Cache keys for the aggregate analytics. Per-guest results are not cached.
const (
	KeyHighestRated    = "analytics:hotels:highest_rated"
	KeyTopGuest        = "analytics:guests:top"
	KeyAverageStay     = "analytics:bookings:average_stay"
	KeyTotalPerBooking = "analytics:payments:total_per_booking"
	KeyAvailableRooms  = "analytics:rooms:available_count"
)
