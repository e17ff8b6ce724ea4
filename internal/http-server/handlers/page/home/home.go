package home

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/view/page"
)

type PageMounter interface {
	Mount(ctx context.Context, q page.Query) *page.Page
}

// New serves the page. The date and time_slot query parameters select the
// availability day and pre-fill the quick-book form.
func New(log *slog.Logger, mounter PageMounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.home.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := page.Query{
			Date:     r.URL.Query().Get("date"),
			TimeSlot: r.URL.Query().Get("time_slot"),
		}

		p := mounter.Mount(r.Context(), q)

		if err := p.Write(w, r, http.StatusOK); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		log.Debug("page rendered", slog.String("date", q.Date), slog.String("time_slot", q.TimeSlot))
	}
}
