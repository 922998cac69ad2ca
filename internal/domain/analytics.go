package domain

// Read models produced by the analytics queries.

type GuestBookings struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalBookings int64  `json:"total_bookings"`
}

type AverageStay struct {
	Days float64 `json:"average_stay_days"`
}

type BookingTotal struct {
	BookingID string  `json:"booking_id"`
	TotalPaid float64 `json:"total_paid"`
}

type RoomCount struct {
	Available int64 `json:"available_rooms"`
}
