package page

import (
	"context"
	"log/slog"
	"time"

	"pickleClub/internal/view/availability"
	"pickleClub/internal/view/contact"
	"pickleClub/internal/view/quickbook"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Backend
type Backend interface {
	availability.SlotFetcher
	quickbook.Booker
	contact.Sender
}

// Site mounts fresh pages against one backend.
type Site struct {
	log     *slog.Logger
	backend Backend
	content Content
	now     func() time.Time
}

// Query carries the availability date and the selected slot of a page load.
type Query struct {
	Date     string
	TimeSlot string
}

func NewSite(log *slog.Logger, backend Backend, content Content, now func() time.Time) *Site {
	if now == nil {
		now = time.Now
	}

	return &Site{
		log:     log,
		backend: backend,
		content: content,
		now:     now,
	}
}

// Build assembles a page with fresh components without reading from the
// backend. An unparsable query date falls back to today.
func (s *Site) Build(q Query) *Page {
	const op = "view.page.Build"

	now := s.now()
	form := quickbook.Defaults(now)

	a := availability.New(s.log, s.backend, form.Date)

	if q.Date != "" {
		if _, err := time.Parse(time.DateOnly, q.Date); err == nil {
			a.SetDate(q.Date)
			form.Date = q.Date
		} else {
			s.log.Debug("ignoring invalid date", slog.String("op", op), slog.String("date", q.Date))
		}
	}
	if q.TimeSlot != "" {
		form.TimeSlot = q.TimeSlot
	}

	return &Page{
		Content:      s.content,
		Year:         now.Year(),
		Availability: a,
		QuickBook:    quickbook.New(s.log, s.backend, form),
		Contact:      contact.New(s.log, s.backend),
	}
}

// Mount builds a page and performs the availability fetch of the mount.
func (s *Site) Mount(ctx context.Context, q Query) *Page {
	p := s.Build(q)
	p.Availability.Refresh(ctx)

	return p
}
