package domain

type Guest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Booking dates are calendar dates in YYYY-MM-DD form. Nothing enforces
// check_in <= check_out.
type Booking struct {
	ID       string `json:"id"`
	GuestID  string `json:"guest_id"`
	RoomID   string `json:"room_id"`
	HotelID  string `json:"hotel_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type Payment struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// DateLayout is the textual form of check_in/check_out.
const DateLayout = "2006-01-02"
