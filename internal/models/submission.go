package models

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionKind string

const (
	SubmissionBooking SubmissionKind = "booking"
	SubmissionContact SubmissionKind = "contact"
)

// Submission is the journal record of one form submission attempt.
type Submission struct {
	ID         uuid.UUID      `json:"id"`
	Kind       SubmissionKind `json:"kind"`
	Email      string         `json:"email"`
	Outcome    string         `json:"outcome"`
	StatusCode int            `json:"status_code"`
	Payload    []byte         `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewSubmission(kind SubmissionKind, email, outcome string, statusCode int, payload []byte) Submission {
	return Submission{
		ID:         uuid.New(),
		Kind:       kind,
		Email:      email,
		Outcome:    outcome,
		StatusCode: statusCode,
		Payload:    payload,
		CreatedAt:  time.Now().UTC(),
	}
}
