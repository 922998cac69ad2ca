package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotel_inventory/internal/domain"
)

func (r *Repo) HighestRatedHotel(ctx context.Context) (_ domain.Hotel, err error) {
	defer observe("analytics.highest_rated", time.Now(), &err)
	h, err := scanHotel(r.db.QueryRowContext(ctx, highestRatedHotelSQL))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) TopGuest(ctx context.Context) (_ domain.GuestBookings, err error) {
	defer observe("analytics.top_guest", time.Now(), &err)
	var g domain.GuestBookings
	var name sql.NullString
	err = r.db.QueryRowContext(ctx, topGuestSQL).Scan(&g.ID, &name, &g.TotalBookings)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GuestBookings{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.GuestBookings{}, err
	}
	g.Name = name.String
	return g, nil
}

// AverageStay is 0 when there are no bookings (AVG yields NULL).
func (r *Repo) AverageStay(ctx context.Context) (_ domain.AverageStay, err error) {
	defer observe("analytics.average_stay", time.Now(), &err)
	var avg sql.NullFloat64
	if err = r.db.QueryRowContext(ctx, r.dialect.averageStaySQL).Scan(&avg); err != nil {
		return domain.AverageStay{}, err
	}
	return domain.AverageStay{Days: avg.Float64}, nil
}

func (r *Repo) CurrentOrLastHotel(ctx context.Context, guestID string, today time.Time) (_ domain.Hotel, err error) {
	defer observe("analytics.current_or_last_hotel", time.Now(), &err)
	day := today.Format(domain.DateLayout)
	h, err := scanHotel(r.db.QueryRowContext(ctx, currentOrLastHotelSQL, guestID, day))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

// TotalPaidPerBooking lists only bookings with at least one payment. Never nil.
func (r *Repo) TotalPaidPerBooking(ctx context.Context) (_ []domain.BookingTotal, err error) {
	defer observe("analytics.total_per_booking", time.Now(), &err)
	rows, err := r.db.QueryContext(ctx, totalPaidPerBookingSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BookingTotal{}
	for rows.Next() {
		var bt domain.BookingTotal
		var total sql.NullFloat64
		if err := rows.Scan(&bt.BookingID, &total); err != nil {
			return nil, err
		}
		bt.TotalPaid = total.Float64
		out = append(out, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) AvailableRoomCount(ctx context.Context) (_ domain.RoomCount, err error) {
	defer observe("analytics.available_rooms", time.Now(), &err)
	var rc domain.RoomCount
	err = r.db.QueryRowContext(ctx, availableRoomCountSQL, domain.RoomAvailable).Scan(&rc.Available)
	return rc, err
}
