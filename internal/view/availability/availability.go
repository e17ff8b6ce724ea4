// Package availability holds the state of the availability checker: the
// selected date and the slots last returned for it.
package availability

import (
	"context"
	"log/slog"
	"sync"

	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/models"
)

const (
	LabelRefresh = "Refresh"
	LabelLoading = "Loading..."
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotFetcher
type SlotFetcher interface {
	Availability(ctx context.Context, date string) ([]models.TimeSlot, error)
}

type Availability struct {
	log     *slog.Logger
	fetcher SlotFetcher

	mu      sync.Mutex
	date    string
	slots   []models.TimeSlot
	loading bool
	failed  bool
	// issued is the sequence number of the latest refresh.
	issued uint64
}

// State is a read-only copy of the component for rendering.
type State struct {
	Date    string
	Loading bool
	// Failed is set when the latest refresh could not fetch the slots.
	Failed bool
	Slots  []models.TimeSlot
}

func (s State) ButtonLabel() string {
	if s.Loading {
		return LabelLoading
	}
	return LabelRefresh
}

func New(log *slog.Logger, fetcher SlotFetcher, date string) *Availability {
	return &Availability{
		log:     log.With(slog.String("component", "availability")),
		fetcher: fetcher,
		date:    date,
		slots:   []models.TimeSlot{},
	}
}

func (a *Availability) SetDate(date string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.date = date
}

// Refresh fetches the slots of the currently selected date. Only the
// response of the latest refresh is applied; failures keep the old list.
func (a *Availability) Refresh(ctx context.Context) {
	const op = "view.availability.Refresh"

	a.mu.Lock()
	a.issued++
	seq := a.issued
	date := a.date
	a.loading = true
	a.mu.Unlock()

	log := a.log.With(
		slog.String("op", op),
		slog.String("date", date),
		slog.Uint64("seq", seq),
	)

	slots, err := a.fetcher.Availability(ctx, date)

	a.mu.Lock()
	defer a.mu.Unlock()

	if seq != a.issued {
		log.Debug("discarding superseded availability response", slog.Uint64("latest", a.issued))
		return
	}

	a.loading = false

	if err != nil {
		log.Error("failed to fetch availability", sl.Err(err))
		a.failed = true
		return
	}

	a.failed = false

	if slots == nil {
		slots = []models.TimeSlot{}
	}
	a.slots = slots

	log.Debug("availability refreshed", slog.Int("slots", len(slots)))
}

func (a *Availability) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	slots := make([]models.TimeSlot, len(a.slots))
	copy(slots, a.slots)

	return State{
		Date:    a.date,
		Loading: a.loading,
		Failed:  a.failed,
		Slots:   slots,
	}
}
