package contact

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
)

const (
	outcomeSent    = "sent"
	outcomeNotSent = "not_sent"
)

type ContactRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Subject  string `json:"subject" form:"subject" validate:"required"`
	Message  string `json:"message" form:"message"`
	Phone    string `json:"phone" form:"phone"`
}

type ContactResponse struct {
	response.Response
	Sent bool `json:"sent"`
}

type PageBuilder interface {
	Build(q page.Query) *page.Page
	Mount(ctx context.Context, q page.Query) *page.Page
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubmissionSaver
type SubmissionSaver interface {
	SaveSubmission(ctx context.Context, sub models.Submission) error
}

// New handles the contact form. The answer only reports whether the message
// was confirmed; a message that was not is logged and journaled.
// Availability is read only for the page, after the write.
func New(log *slog.Logger, site PageBuilder, saver SubmissionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.contact.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req ContactRequest

		err := render.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			reject(w, r, log, site, req, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("subject", req.Subject))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				reject(w, r, log, site, req, response.ValidationError(validateErr))
				return
			}
		}

		msg := toModel(req)

		p := site.Build(page.Query{})
		p.Contact.SetForm(msg)

		sent := p.Contact.Submit(r.Context())

		outcome := outcomeNotSent
		if sent {
			outcome = outcomeSent
		}

		metrics.IncSubmission(string(models.SubmissionContact), outcome)
		record(r.Context(), log, saver, msg, outcome, p.Contact.Reply().StatusCode)

		if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
			render.JSON(w, r, ContactResponse{
				Response: response.OK(),
				Sent:     sent,
			})
			return
		}

		p.Availability.Refresh(r.Context())

		if err = p.Write(w, r, http.StatusOK); err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

func toModel(req ContactRequest) models.ContactMessage {
	return models.ContactMessage{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Phone:    req.Phone,
	}
}

func reject(w http.ResponseWriter, r *http.Request, log *slog.Logger, site PageBuilder, req ContactRequest, resp response.Response) {
	if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ContactResponse{Response: resp})
		return
	}

	p := site.Mount(r.Context(), page.Query{})
	p.Contact.SetForm(toModel(req))
	p.Contact.Reject(resp.Error)

	if err := p.Write(w, r, http.StatusBadRequest); err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func record(ctx context.Context, log *slog.Logger, saver SubmissionSaver, msg models.ContactMessage, outcome string, statusCode int) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to encode submission", sl.Err(err))
		return
	}

	sub := models.NewSubmission(models.SubmissionContact, msg.Email, outcome, statusCode, payload)
	if err = saver.SaveSubmission(ctx, sub); err != nil {
		log.Error("failed to save submission", sl.Err(err))
	}
}
