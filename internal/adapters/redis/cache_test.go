package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var h domain.Hotel
	if ok, err := c.Get(ctx, domain.KeyHighestRated, &h); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	in := domain.Hotel{ID: "h-1", Name: "Grand", Location: "Lisbon", Stars: 5}
	if err := c.Set(ctx, domain.KeyHighestRated, in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("hotel:" + domain.KeyHighestRated) {
		t.Fatalf("expected prefixed key in redis")
	}

	ok, err := c.Get(ctx, domain.KeyHighestRated, &h)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if h != in {
		t.Fatalf("unexpected cached hotel: %+v", h)
	}

	if err := c.Del(ctx, domain.KeyHighestRated); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, domain.KeyHighestRated, &h); ok {
		t.Fatalf("expected miss after del")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, domain.KeyAverageStay, domain.AverageStay{Days: 2.5}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var avg domain.AverageStay
	if ok, _ := c.Get(ctx, domain.KeyAverageStay, &avg); ok {
		t.Fatalf("expected entry to expire, got %+v", avg)
	}
}

func TestCache_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	c := redisad.New(mr.Addr(), "", 0)
	defer c.Close()
	mr.Close()

	var avg domain.AverageStay
	if _, err := c.Get(context.Background(), domain.KeyAverageStay, &avg); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
