package quickBook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"pickleClub/internal/lib/api/response"
	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/metrics"
	"pickleClub/internal/models"
	"pickleClub/internal/view/page"
	"pickleClub/internal/view/quickbook"
)

type BookingRequest struct {
	Date     string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" form:"time_slot" validate:"required"`
	CourtID  string `json:"court_id" form:"court_id"`
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone"`
	Notes    string `json:"notes" form:"notes"`
}

type BookingResponse struct {
	response.Response
	Message string `json:"message,omitempty"`
	Outcome string `json:"outcome,omitempty"`
}

type PageBuilder interface {
	Build(q page.Query) *page.Page
	Mount(ctx context.Context, q page.Query) *page.Page
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubmissionSaver
type SubmissionSaver interface {
	SaveSubmission(ctx context.Context, sub models.Submission) error
}

// New handles the quick-book form. Browsers get the page back with the
// status message and the booked day's slots; clients accepting JSON get a
// BookingResponse. Availability is read only for the page, after the write.
func New(log *slog.Logger, site PageBuilder, saver SubmissionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.quickBook.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req BookingRequest

		err := render.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			reject(w, r, log, site, req, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("date", req.Date), slog.String("time_slot", req.TimeSlot))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				reject(w, r, log, site, req, response.ValidationError(validateErr))
				return
			}
		}

		form := toModel(req)

		p := site.Build(page.Query{})
		p.QuickBook.SetForm(form)

		outcome := p.QuickBook.Submit(r.Context())
		status := p.QuickBook.State().Status

		metrics.IncSubmission(string(models.SubmissionBooking), string(outcome))
		record(r.Context(), log, saver, form, outcome, p.QuickBook.Reply().StatusCode)

		code := statusCode(outcome)

		if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
			resp := BookingResponse{Outcome: string(outcome)}
			if outcome == quickbook.OutcomeConfirmed {
				resp.Response = response.OK()
				resp.Message = status
			} else {
				resp.Response = response.Error(status)
			}

			render.Status(r, code)
			render.JSON(w, r, resp)
			return
		}

		p.Availability.SetDate(form.Date)
		p.Availability.Refresh(r.Context())

		if err = p.Write(w, r, code); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

func toModel(req BookingRequest) models.BookingRequest {
	courtID := req.CourtID
	if courtID == "" {
		courtID = quickbook.DefaultCourtID
	}

	return models.BookingRequest{
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		CourtID:  courtID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	}
}

func statusCode(outcome quickbook.Outcome) int {
	switch outcome {
	case quickbook.OutcomeConfirmed:
		return http.StatusOK
	case quickbook.OutcomeConflict:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// reject answers 400 without contacting the backend, keeping what the user typed.
func reject(w http.ResponseWriter, r *http.Request, log *slog.Logger, site PageBuilder, req BookingRequest, resp response.Response) {
	if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, BookingResponse{Response: resp})
		return
	}

	p := site.Mount(r.Context(), page.Query{Date: req.Date})
	p.QuickBook.SetForm(toModel(req))
	p.QuickBook.Reject(resp.Error)

	if err := p.Write(w, r, http.StatusBadRequest); err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func record(ctx context.Context, log *slog.Logger, saver SubmissionSaver, form models.BookingRequest, outcome quickbook.Outcome, statusCode int) {
	payload, err := json.Marshal(form)
	if err != nil {
		log.Error("failed to encode submission", sl.Err(err))
		return
	}

	sub := models.NewSubmission(models.SubmissionBooking, form.Email, string(outcome), statusCode, payload)
	if err = saver.SaveSubmission(ctx, sub); err != nil {
		log.Error("failed to save submission", sl.Err(err))
	}
}
