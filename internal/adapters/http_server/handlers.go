// internal/adapters/http_server/handlers.go
package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
)

type Handlers struct {
	Hotels   *app.EntityService[domain.Hotel]
	Rooms    *app.EntityService[domain.Room]
	Guests   *app.EntityService[domain.Guest]
	Bookings *app.EntityService[domain.Booking]
	Payments *app.EntityService[domain.Payment]
	Q        *app.QueryService
}

// Sentinel bodies for empty analytics results. These answer 200, unlike the
// 404 of a by-id lookup.
const (
	msgNoHotels       = "No hotels found"
	msgNoGuests       = "no guests found"
	msgNoCurrentHotel = "no current or previous hotel found"
)

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// Static segments win over {id} in chi, so these coexist with the CRUD routes.
	s.mux.Get("/hotels/highest-rated", h.highestRatedHotel)
	s.mux.Get("/guests/top", h.topGuest)
	s.mux.Get("/rooms/available/count", h.availableRoomCount)
	s.mux.Get("/analytics/bookings/average_stay", h.averageStay)
	s.mux.Get("/analytics/bookings/guest/{guest_id}/current_or_last_hotel", h.currentOrLastHotel)
	s.mux.Get("/analytics/payments/total_per_booking", h.totalPaidPerBooking)

	mountEntity(s.mux, "/hotels", "hotel", h.Hotels)
	mountEntity(s.mux, "/rooms", "room", h.Rooms)
	mountEntity(s.mux, "/guests", "guest", h.Guests)
	mountEntity(s.mux, "/bookings", "booking", h.Bookings)
	mountEntity(s.mux, "/payments", "payment", h.Payments)
}

func (h *Handlers) highestRatedHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.HighestRatedHotel(r.Context())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeRead(w, r, message{Message: msgNoHotels})
	case err != nil:
		internalError(w, r, err)
	default:
		writeRead(w, r, hotel)
	}
}

func (h *Handlers) topGuest(w http.ResponseWriter, r *http.Request) {
	g, err := h.Q.TopGuest(r.Context())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeRead(w, r, message{Message: msgNoGuests})
	case err != nil:
		internalError(w, r, err)
	default:
		writeRead(w, r, g)
	}
}

func (h *Handlers) averageStay(w http.ResponseWriter, r *http.Request) {
	avg, err := h.Q.AverageStay(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeRead(w, r, avg)
}

func (h *Handlers) currentOrLastHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.CurrentOrLastHotel(r.Context(), chi.URLParam(r, "guest_id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeRead(w, r, message{Message: msgNoCurrentHotel})
	case err != nil:
		internalError(w, r, err)
	default:
		writeRead(w, r, hotel)
	}
}

func (h *Handlers) totalPaidPerBooking(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.TotalPaidPerBooking(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if out == nil {
		out = []domain.BookingTotal{}
	}
	writeRead(w, r, out)
}

func (h *Handlers) availableRoomCount(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Q.AvailableRoomCount(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeRead(w, r, rc)
}
