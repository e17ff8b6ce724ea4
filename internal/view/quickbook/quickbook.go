// Package quickbook holds the quick-book form and its submission status.
package quickbook

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pickleClub/internal/client/backend"
	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/models"
)

const (
	DefaultTimeSlot = "18:00-19:00"
	DefaultCourtID  = "court-1"
)

const (
	MsgSubmitting = "Submitting..."
	MsgConfirmed  = "Booking confirmed! Check your email for details."
	MsgConflict   = "That slot just got booked. Please pick another one."
	MsgFailed     = "Could not create booking, please try again."
	MsgError      = "Error submitting booking."
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInFlight
	PhaseResolved
)

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeConflict  Outcome = "conflict"
	OutcomeRejected  Outcome = "rejected"
	OutcomeError     Outcome = "error"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Booker
type Booker interface {
	Book(ctx context.Context, req models.BookingRequest) (models.Reply, error)
}

type QuickBook struct {
	log    *slog.Logger
	booker Booker

	mu      sync.Mutex
	form    models.BookingRequest
	phase   Phase
	status  string
	outcome Outcome
	reply   models.Reply
}

type State struct {
	Form    models.BookingRequest
	Phase   Phase
	Status  string
	Outcome Outcome
}

// Defaults returns the form as first shown: today's UTC date and the default slot and court.
func Defaults(now time.Time) models.BookingRequest {
	return models.BookingRequest{
		Date:     now.UTC().Format(time.DateOnly),
		TimeSlot: DefaultTimeSlot,
		CourtID:  DefaultCourtID,
	}
}

func New(log *slog.Logger, booker Booker, form models.BookingRequest) *QuickBook {
	return &QuickBook{
		log:    log.With(slog.String("component", "quickbook")),
		booker: booker,
		form:   form,
	}
}

func (q *QuickBook) SetForm(form models.BookingRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.form = form
}

// Reject resolves the form with msg without contacting the backend.
func (q *QuickBook) Reject(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.phase = PhaseResolved
	q.status = msg
	q.outcome = OutcomeNone
}

// Submit sends the form as it is and resolves the status message from the answer.
func (q *QuickBook) Submit(ctx context.Context) Outcome {
	const op = "view.quickbook.Submit"

	q.mu.Lock()
	form := q.form
	q.phase = PhaseInFlight
	q.status = MsgSubmitting
	q.outcome = OutcomeNone
	q.mu.Unlock()

	log := q.log.With(
		slog.String("op", op),
		slog.String("date", form.Date),
		slog.String("time_slot", form.TimeSlot),
		slog.String("court_id", form.CourtID),
	)

	reply, err := q.booker.Book(ctx, form)

	var outcome Outcome
	var msg string

	switch {
	case errors.Is(err, backend.ErrSlotConflict):
		outcome, msg = OutcomeConflict, MsgConflict
		log.Info("slot already booked")
	case err != nil:
		outcome, msg = OutcomeError, MsgError
		log.Error("failed to submit booking", sl.Err(err))
	case reply.OK:
		outcome, msg = OutcomeConfirmed, MsgConfirmed
		log.Info("booking confirmed")
	default:
		outcome, msg = OutcomeRejected, MsgFailed
		log.Warn("booking rejected", slog.Int("status_code", reply.StatusCode))
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.phase = PhaseResolved
	q.status = msg
	q.outcome = outcome
	q.reply = reply

	return outcome
}

// Reply is the backend answer of the last submission.
func (q *QuickBook) Reply() models.Reply {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.reply
}

func (q *QuickBook) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	return State{
		Form:    q.form,
		Phase:   q.phase,
		Status:  q.status,
		Outcome: q.outcome,
	}
}
