package sqlrepo

import (
	"database/sql"
	"time"

	"hotel_inventory/internal/adapters/observability"
	"hotel_inventory/internal/domain"
)

// Repo bundles the entity tables and the analytics queries over one handle.
type Repo struct {
	db      *sql.DB
	dialect Dialect

	Hotels   *Table[domain.Hotel]
	Rooms    *Table[domain.Room]
	Guests   *Table[domain.Guest]
	Bookings *Table[domain.Booking]
	Payments *Table[domain.Payment]
}

func New(h *Handle) *Repo {
	db := h.DB
	return &Repo{
		db:      db,
		dialect: h.Dialect,
		Hotels: newTable(db, "hotels",
			[]string{"name", "location", "stars"},
			scanHotel,
			func(v domain.Hotel) []any { return []any{v.Name, v.Location, v.Stars} }),
		Rooms: newTable(db, "rooms",
			[]string{"hotel_id", "room_type", "price", "status"},
			scanRoom,
			func(v domain.Room) []any { return []any{v.HotelID, v.RoomType, v.Price, v.Status} }),
		Guests: newTable(db, "guests",
			[]string{"name", "phone", "email"},
			scanGuest,
			func(v domain.Guest) []any { return []any{v.Name, v.Phone, v.Email} }),
		Bookings: newTable(db, "bookings",
			[]string{"guest_id", "room_id", "hotel_id", "check_in", "check_out"},
			scanBooking,
			func(v domain.Booking) []any {
				return []any{v.GuestID, v.RoomID, v.HotelID, v.CheckIn, v.CheckOut}
			}),
		Payments: newTable(db, "payments",
			[]string{"booking_id", "amount", "method"},
			scanPayment,
			func(v domain.Payment) []any { return []any{v.BookingID, v.Amount, v.Method} }),
	}
}

// observe records latency and outcome of one storage call.
func observe(query string, start time.Time, err *error) {
	observability.ObserveQuery(query, *err, time.Since(start))
}

// ---- row mappers ----
// Nullable columns decode to zero values.

func scanHotel(s rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var location sql.NullString
	var stars sql.NullInt64
	if err := s.Scan(&h.ID, &h.Name, &location, &stars); err != nil {
		return domain.Hotel{}, err
	}
	h.Location = location.String
	h.Stars = int(stars.Int64)
	return h, nil
}

func scanRoom(s rowScanner) (domain.Room, error) {
	var r domain.Room
	var roomType, status sql.NullString
	var price sql.NullFloat64
	if err := s.Scan(&r.ID, &r.HotelID, &roomType, &price, &status); err != nil {
		return domain.Room{}, err
	}
	r.RoomType = roomType.String
	r.Price = price.Float64
	r.Status = status.String
	return r, nil
}

func scanGuest(s rowScanner) (domain.Guest, error) {
	var g domain.Guest
	var name, phone, email sql.NullString
	if err := s.Scan(&g.ID, &name, &phone, &email); err != nil {
		return domain.Guest{}, err
	}
	g.Name, g.Phone, g.Email = name.String, phone.String, email.String
	return g, nil
}

func scanBooking(s rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var guestID, roomID, hotelID, checkIn, checkOut sql.NullString
	if err := s.Scan(&b.ID, &guestID, &roomID, &hotelID, &checkIn, &checkOut); err != nil {
		return domain.Booking{}, err
	}
	b.GuestID, b.RoomID, b.HotelID = guestID.String, roomID.String, hotelID.String
	b.CheckIn, b.CheckOut = checkIn.String, checkOut.String
	return b, nil
}

func scanPayment(s rowScanner) (domain.Payment, error) {
	var p domain.Payment
	var bookingID, method sql.NullString
	var amount sql.NullFloat64
	if err := s.Scan(&p.ID, &bookingID, &amount, &method); err != nil {
		return domain.Payment{}, err
	}
	p.BookingID = bookingID.String
	p.Amount = amount.Float64
	p.Method = method.String
	return p, nil
}
