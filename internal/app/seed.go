package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"hotel_inventory/internal/domain"
)

// Seeder generates demo data through the regular entity services, so seeded
// rows get service ids and evict cached aggregates like API writes do.
type Seeder struct {
	Hotels   *EntityService[domain.Hotel]
	Rooms    *EntityService[domain.Room]
	Guests   *EntityService[domain.Guest]
	Bookings *EntityService[domain.Booking]
	Payments *EntityService[domain.Payment]

	RoomsPerHotel    int
	BookingsPerHotel int
	Now              func() time.Time
}

var (
	seedCities    = []string{"Lisbon", "Porto", "Madrid", "Paris", "Berlin", "Rome", "Vienna"}
	seedRoomTypes = []string{"single", "double", "suite"}
	seedMethods   = []string{"card", "cash", "transfer"}
)

func (s *Seeder) SeedGuests(ctx context.Context, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := s.Guests.Create(ctx, domain.Guest{
			Name:  fmt.Sprintf("Guest %03d", i+1),
			Phone: fmt.Sprintf("+351 900 000 %03d", i+1),
			Email: fmt.Sprintf("guest%03d@example.com", i+1),
		})
		if err != nil {
			return ids, fmt.Errorf("seed guest %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SeedHotel creates hotel number n with its rooms, and bookings (each with
// one or two payments) spread across guestIDs. Returns the hotel id.
func (s *Seeder) SeedHotel(ctx context.Context, n int, guestIDs []string) (string, error) {
	hotelID, err := s.Hotels.Create(ctx, domain.Hotel{
		Name:     fmt.Sprintf("Hotel %03d", n),
		Location: seedCities[n%len(seedCities)],
		Stars:    1 + rand.Intn(5),
	})
	if err != nil {
		return "", fmt.Errorf("seed hotel %d: %w", n, err)
	}

	type room struct {
		id    string
		price float64
	}
	rooms := make([]room, 0, s.RoomsPerHotel)
	for i := 0; i < s.RoomsPerHotel; i++ {
		status := domain.RoomAvailable
		if rand.Intn(3) == 0 {
			status = "occupied"
		}
		rt := seedRoomTypes[i%len(seedRoomTypes)]
		price := float64(60+40*(i%len(seedRoomTypes))) + float64(rand.Intn(20))
		id, err := s.Rooms.Create(ctx, domain.Room{HotelID: hotelID, RoomType: rt, Price: price, Status: status})
		if err != nil {
			return hotelID, fmt.Errorf("seed room for hotel %d: %w", n, err)
		}
		rooms = append(rooms, room{id: id, price: price})
	}
	if len(rooms) == 0 || len(guestIDs) == 0 {
		return hotelID, nil
	}

	today := s.now()
	for i := 0; i < s.BookingsPerHotel; i++ {
		rm := rooms[rand.Intn(len(rooms))]
		nights := 1 + rand.Intn(7)
		checkIn := today.AddDate(0, 0, rand.Intn(90)-60)
		bookingID, err := s.Bookings.Create(ctx, domain.Booking{
			GuestID:  guestIDs[rand.Intn(len(guestIDs))],
			RoomID:   rm.id,
			HotelID:  hotelID,
			CheckIn:  checkIn.Format(domain.DateLayout),
			CheckOut: checkIn.AddDate(0, 0, nights).Format(domain.DateLayout),
		})
		if err != nil {
			return hotelID, fmt.Errorf("seed booking for hotel %d: %w", n, err)
		}

		total := rm.price * float64(nights)
		parts := []float64{total}
		if rand.Intn(2) == 0 {
			parts = []float64{total / 2, total / 2}
		}
		for _, amount := range parts {
			if _, err := s.Payments.Create(ctx, domain.Payment{
				BookingID: bookingID,
				Amount:    amount,
				Method:    seedMethods[rand.Intn(len(seedMethods))],
			}); err != nil {
				return hotelID, fmt.Errorf("seed payment for booking %s: %w", bookingID, err)
			}
		}
	}
	return hotelID, nil
}

func (s *Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
