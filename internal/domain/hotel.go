package domain

type Hotel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Stars    int    `json:"stars"`
}

// Room status is free text; "available" is the only value the analytics look at.
type Room struct {
	ID       string  `json:"id"`
	HotelID  string  `json:"hotel_id"`
	RoomType string  `json:"room_type"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

const RoomAvailable = "available"
