package slots

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"pickleClub/internal/lib/api/response"
	"pickleClub/internal/models"
	"pickleClub/internal/view/page"
)

type SlotsResponse struct {
	response.Response
	Date  string            `json:"date"`
	Slots []models.TimeSlot `json:"slots"`
}

type PageMounter interface {
	Mount(ctx context.Context, q page.Query) *page.Page
}

// New answers with the availability section's data for ?date= (today when omitted).
// A failed backend read answers 502 so it is not mistaken for an empty day.
func New(log *slog.Logger, mounter PageMounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.slots.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		date := r.URL.Query().Get("date")
		if date != "" {
			if _, err := time.Parse(time.DateOnly, date); err != nil {
				log.Error("invalid date format", slog.String("date", date))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date format; expected YYYY-MM-DD"))
				return
			}
		}

		state := mounter.Mount(r.Context(), page.Query{Date: date}).Availability.State()

		if state.Failed {
			log.Error("availability unavailable", slog.String("date", state.Date))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, SlotsResponse{
				Response: response.Error("failed to fetch availability"),
				Date:     state.Date,
				Slots:    state.Slots,
			})
			return
		}

		log.Info("availability retrieved", slog.String("date", state.Date), slog.Int("count", len(state.Slots)))

		responseOK(w, r, state.Date, state.Slots)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, date string, slots []models.TimeSlot) {
	render.JSON(w, r, SlotsResponse{
		Response: response.OK(),
		Date:     date,
		Slots:    slots,
	})
}
