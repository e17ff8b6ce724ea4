// Package contact holds the contact form and its sent confirmation.
package contact

import (
	"context"
	"log/slog"
	"sync"

	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/models"
)

const MsgSent = "Thanks! We’ll get back to you shortly."

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Sender
type Sender interface {
	SendContact(ctx context.Context, msg models.ContactMessage) (models.Reply, error)
}

type Contact struct {
	log    *slog.Logger
	sender Sender

	mu      sync.Mutex
	form    models.ContactMessage
	sent    bool
	invalid string
	reply   models.Reply
}

type State struct {
	Form models.ContactMessage
	Sent bool
	// Invalid is set when the form never reached the backend.
	Invalid string
}

func New(log *slog.Logger, sender Sender) *Contact {
	return &Contact{
		log:    log.With(slog.String("component", "contact")),
		sender: sender,
	}
}

func (c *Contact) SetForm(form models.ContactMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *Contact) Reject(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sent = false
	c.invalid = msg
}

// Submit sends the form and reports whether it was confirmed. Only a 2xx
// answer with ok set confirms; every other outcome leaves sent unset.
func (c *Contact) Submit(ctx context.Context) bool {
	const op = "view.contact.Submit"

	c.mu.Lock()
	form := c.form
	c.sent = false
	c.invalid = ""
	c.mu.Unlock()

	log := c.log.With(slog.String("op", op))

	reply, err := c.sender.SendContact(ctx, form)
	if err != nil {
		log.Error("failed to send contact message", sl.Err(err))
	} else if !reply.Success() {
		log.Warn("contact message not accepted",
			slog.Int("status_code", reply.StatusCode),
			slog.Bool("ok", reply.OK),
		)
	}

	sent := err == nil && reply.Success()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sent = sent
	c.reply = reply

	return sent
}

func (c *Contact) Reply() models.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reply
}

func (c *Contact) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Form:    c.form,
		Sent:    c.sent,
		Invalid: c.invalid,
	}
}

// Confirmation is the text shown once the message was sent.
func (s State) Confirmation() string {
	if s.Sent {
		return MsgSent
	}
	return ""
}
