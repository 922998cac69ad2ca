//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	server "hotel_inventory/internal/adapters/http_server"
	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/storage/sqlrepo"
)

// ---------- helpers ----------

var today = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func newAPI(t *testing.T, cache domain.Cache) *httptest.Server {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "hotel.db") + "?_pragma=busy_timeout(5000)"
	h, err := sqlrepo.Open(context.Background(), "sqlite", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	repo := sqlrepo.New(h)

	srv := server.New(server.Options{RequestTimeout: 5 * time.Second})
	srv.MountHandlers(&server.Handlers{
		Hotels:   app.NewHotelService(repo.Hotels, cache),
		Rooms:    app.NewRoomService(repo.Rooms, cache),
		Guests:   app.NewGuestService(repo.Guests, cache),
		Bookings: app.NewBookingService(repo.Bookings, cache),
		Payments: app.NewPaymentService(repo.Payments, cache),
		Q:        app.NewQueryService(repo, cache, time.Minute).WithClock(func() time.Time { return today }),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	if s, ok := body.(string); ok {
		rd = bytes.NewReader([]byte(s))
	} else if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer res.Body.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(res.Body)
	return res, buf.Bytes()
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
	return v
}

type created struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func create(t *testing.T, ts *httptest.Server, path string, v any) string {
	t.Helper()
	res, body := do(t, http.MethodPost, ts.URL+path, v)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("POST %s: status %d %s", path, res.StatusCode, body)
	}
	c := decode[created](t, body)
	if c.ID == "" {
		t.Fatalf("POST %s: empty id in %s", path, body)
	}
	return c.ID
}

func getMessage(t *testing.T, url string) string {
	t.Helper()
	res, body := do(t, http.MethodGet, url, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, res.StatusCode)
	}
	return decode[map[string]any](t, body)["message"].(string)
}

// ---------- tests ----------

func TestHTTP_HotelRoundTrip(t *testing.T) {
	ts := newAPI(t, nil)

	res, body := do(t, http.MethodPost, ts.URL+"/hotels", domain.Hotel{ID: "client", Name: "Grand", Location: "Lisbon", Stars: 4})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	c := decode[created](t, body)
	if c.Status != "hotel added" || c.ID == "" || c.ID == "client" {
		t.Fatalf("unexpected create response: %s", body)
	}

	res, body = do(t, http.MethodGet, ts.URL+"/hotels/"+c.ID, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	h := decode[domain.Hotel](t, body)
	if h != (domain.Hotel{ID: c.ID, Name: "Grand", Location: "Lisbon", Stars: 4}) {
		t.Fatalf("round trip mismatch: %+v", h)
	}

	res, body = do(t, http.MethodPut, ts.URL+"/hotels/"+c.ID, domain.Hotel{Name: "Grand II", Location: "Porto", Stars: 5})
	if res.StatusCode != http.StatusOK || decode[created](t, body).Status != "hotel updated" {
		t.Fatalf("update: %d %s", res.StatusCode, body)
	}
	_, body = do(t, http.MethodGet, ts.URL+"/hotels", nil)
	if list := decode[[]domain.Hotel](t, body); len(list) != 1 || list[0].Name != "Grand II" || list[0].ID != c.ID {
		t.Fatalf("list after update: %s", body)
	}

	res, body = do(t, http.MethodDelete, ts.URL+"/hotels/"+c.ID, nil)
	if res.StatusCode != http.StatusOK || decode[created](t, body).Status != "hotel deleted" {
		t.Fatalf("delete: %d %s", res.StatusCode, body)
	}
	res, body = do(t, http.MethodGet, ts.URL+"/hotels/"+c.ID, nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", res.StatusCode)
	}
	if p := decode[map[string]any](t, body); p["detail"] != "hotel not found" {
		t.Fatalf("unexpected problem body: %s", body)
	}
}

func TestHTTP_EmptyListsAndBadBodies(t *testing.T) {
	ts := newAPI(t, nil)

	for _, path := range []string{"/hotels", "/rooms", "/guests", "/bookings", "/payments"} {
		_, body := do(t, http.MethodGet, ts.URL+path, nil)
		if string(bytes.TrimSpace(body)) != "[]" {
			t.Fatalf("GET %s: expected [], got %s", path, body)
		}
		res, _ := do(t, http.MethodPost, ts.URL+path, "{not json")
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("POST %s with bad body: expected 400, got %d", path, res.StatusCode)
		}
	}
}

func TestHTTP_AnalyticsSentinels(t *testing.T) {
	ts := newAPI(t, nil)

	if m := getMessage(t, ts.URL+"/hotels/highest-rated"); m != "No hotels found" {
		t.Fatalf("highest-rated: %q", m)
	}
	if m := getMessage(t, ts.URL+"/guests/top"); m != "no guests found" {
		t.Fatalf("guests/top: %q", m)
	}
	if m := getMessage(t, ts.URL+"/analytics/bookings/guest/nobody/current_or_last_hotel"); m != "no current or previous hotel found" {
		t.Fatalf("current_or_last: %q", m)
	}

	_, body := do(t, http.MethodGet, ts.URL+"/analytics/bookings/average_stay", nil)
	if avg := decode[map[string]float64](t, body); avg["average_stay_days"] != 0 {
		t.Fatalf("average_stay: %s", body)
	}
	_, body = do(t, http.MethodGet, ts.URL+"/analytics/payments/total_per_booking", nil)
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Fatalf("total_per_booking: %s", body)
	}
	_, body = do(t, http.MethodGet, ts.URL+"/rooms/available/count", nil)
	if rc := decode[map[string]int](t, body); rc["available_rooms"] != 0 {
		t.Fatalf("available count: %s", body)
	}
}

func TestHTTP_AnalyticsScenario(t *testing.T) {
	ts := newAPI(t, nil)

	grand := create(t, ts, "/hotels", domain.Hotel{Name: "Grand", Location: "Lisbon", Stars: 5})
	inn := create(t, ts, "/hotels", domain.Hotel{Name: "Inn", Location: "Porto", Stars: 2})
	room := create(t, ts, "/rooms", domain.Room{HotelID: grand, RoomType: "suite", Price: 200, Status: "available"})
	create(t, ts, "/rooms", domain.Room{HotelID: inn, RoomType: "single", Price: 60, Status: "occupied"})
	ana := create(t, ts, "/guests", domain.Guest{Name: "Ana", Phone: "1", Email: "ana@example.com"})
	create(t, ts, "/guests", domain.Guest{Name: "Bob", Phone: "2", Email: "bob@example.com"})

	past := create(t, ts, "/bookings", domain.Booking{GuestID: ana, RoomID: room, HotelID: inn, CheckIn: "2024-01-01", CheckOut: "2024-01-04"})
	create(t, ts, "/bookings", domain.Booking{GuestID: ana, RoomID: room, HotelID: grand, CheckIn: "2024-06-14", CheckOut: "2024-06-17"})
	create(t, ts, "/payments", domain.Payment{BookingID: past, Amount: 30, Method: "card"})
	create(t, ts, "/payments", domain.Payment{BookingID: past, Amount: 20, Method: "cash"})

	_, body := do(t, http.MethodGet, ts.URL+"/hotels/highest-rated", nil)
	if h := decode[domain.Hotel](t, body); h.ID != grand {
		t.Fatalf("highest-rated: %s", body)
	}

	_, body = do(t, http.MethodGet, ts.URL+"/guests/top", nil)
	if g := decode[domain.GuestBookings](t, body); g.ID != ana || g.Name != "Ana" || g.TotalBookings != 2 {
		t.Fatalf("guests/top: %s", body)
	}

	_, body = do(t, http.MethodGet, ts.URL+"/analytics/bookings/average_stay", nil)
	if avg := decode[domain.AverageStay](t, body); avg.Days != 3.0 {
		t.Fatalf("average_stay: %s", body)
	}

	_, body = do(t, http.MethodGet, fmt.Sprintf("%s/analytics/bookings/guest/%s/current_or_last_hotel", ts.URL, ana), nil)
	if h := decode[domain.Hotel](t, body); h.ID != grand || h.Name != "Grand" || h.Location != "Lisbon" || h.Stars != 5 {
		t.Fatalf("current_or_last: %s", body)
	}

	_, body = do(t, http.MethodGet, ts.URL+"/analytics/payments/total_per_booking", nil)
	totals := decode[[]domain.BookingTotal](t, body)
	if len(totals) != 1 || totals[0] != (domain.BookingTotal{BookingID: past, TotalPaid: 50}) {
		t.Fatalf("total_per_booking: %s", body)
	}

	_, body = do(t, http.MethodGet, ts.URL+"/rooms/available/count", nil)
	if rc := decode[domain.RoomCount](t, body); rc.Available != 1 {
		t.Fatalf("available count: %s", body)
	}
}

func TestHTTP_ETagNotModified(t *testing.T) {
	ts := newAPI(t, nil)
	create(t, ts, "/hotels", domain.Hotel{Name: "Grand", Stars: 5})

	res, _ := do(t, http.MethodGet, ts.URL+"/hotels/highest-rated", nil)
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag header")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/hotels/highest-rated", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}

func TestHTTP_WritesRefreshCachedAggregates(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })
	ts := newAPI(t, cache)

	create(t, ts, "/hotels", domain.Hotel{Name: "Inn", Stars: 2})
	_, body := do(t, http.MethodGet, ts.URL+"/hotels/highest-rated", nil)
	if h := decode[domain.Hotel](t, body); h.Name != "Inn" {
		t.Fatalf("first read: %s", body)
	}
	if !mr.Exists("hotel:" + domain.KeyHighestRated) {
		t.Fatalf("expected aggregate to be cached")
	}

	create(t, ts, "/hotels", domain.Hotel{Name: "Grand", Stars: 5})
	_, body = do(t, http.MethodGet, ts.URL+"/hotels/highest-rated", nil)
	if h := decode[domain.Hotel](t, body); h.Name != "Grand" {
		t.Fatalf("write must be visible to the next read, got %s", body)
	}
}
