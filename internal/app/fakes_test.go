package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel_inventory/internal/domain"
)

// ---- fakes ----

type fakeAnalytics struct {
	hotel   domain.Hotel
	guest   domain.GuestBookings
	avg     domain.AverageStay
	totals  []domain.BookingTotal
	rooms   domain.RoomCount
	err     error
	calls   map[string]int
	lastDay time.Time
}

func (f *fakeAnalytics) hit(name string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAnalytics) HighestRatedHotel(ctx context.Context) (domain.Hotel, error) {
	f.hit("highest")
	return f.hotel, f.err
}
func (f *fakeAnalytics) TopGuest(ctx context.Context) (domain.GuestBookings, error) {
	f.hit("top")
	return f.guest, f.err
}
func (f *fakeAnalytics) AverageStay(ctx context.Context) (domain.AverageStay, error) {
	f.hit("avg")
	return f.avg, f.err
}
func (f *fakeAnalytics) CurrentOrLastHotel(ctx context.Context, guestID string, today time.Time) (domain.Hotel, error) {
	f.hit("current")
	f.lastDay = today
	return f.hotel, f.err
}
func (f *fakeAnalytics) TotalPaidPerBooking(ctx context.Context) ([]domain.BookingTotal, error) {
	f.hit("totals")
	return f.totals, f.err
}
func (f *fakeAnalytics) AvailableRoomCount(ctx context.Context) (domain.RoomCount, error) {
	f.hit("rooms")
	return f.rooms, f.err
}

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	store  map[string][]byte
	dels   []string
	getErr error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type fakeStore[T any] struct {
	rows map[string]T
	err  error
}

func (f *fakeStore[T]) Insert(ctx context.Context, id string, v T) error {
	if f.err != nil {
		return f.err
	}
	if f.rows == nil {
		f.rows = map[string]T{}
	}
	f.rows[id] = v
	return nil
}
func (f *fakeStore[T]) Get(ctx context.Context, id string) (T, error) {
	v, ok := f.rows[id]
	if !ok {
		return v, domain.ErrNotFound
	}
	return v, nil
}
func (f *fakeStore[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	for _, v := range f.rows {
		out = append(out, v)
	}
	return out, nil
}
func (f *fakeStore[T]) Update(ctx context.Context, id string, v T) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; ok {
		f.rows[id] = v
	}
	return nil
}
func (f *fakeStore[T]) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

var errBoom = errors.New("boom")
