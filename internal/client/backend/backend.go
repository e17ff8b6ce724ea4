// Package backend is the HTTP client of the external booking service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"pickleClub/internal/metrics"
	"pickleClub/internal/models"
)

const (
	pathAvailability = "/api/availability"
	pathBook         = "/api/book"
	pathContact      = "/api/contact"
)

const (
	outcomeOK             = "ok"
	outcomeRejected       = "rejected"
	outcomeConflict       = "conflict"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

// ErrSlotConflict is returned by Book when the backend answers 409.
var ErrSlotConflict = errors.New("slot already booked")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type availabilityRequest struct {
	Date string `json:"date"`
}

type availabilityResponse struct {
	Slots []models.TimeSlot `json:"slots"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Availability fetches the time slots of date (YYYY-MM-DD). A response
// without slots yields an empty list. The status code is not inspected.
func (c *Client) Availability(ctx context.Context, date string) ([]models.TimeSlot, error) {
	const op = "client.backend.Availability"

	start := time.Now()

	res, err := c.post(ctx, pathAvailability, availabilityRequest{Date: date})
	if err != nil {
		metrics.ObserveBackend(pathAvailability, outcomeTransportError, time.Since(start))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	var body availabilityResponse
	if err = render.DecodeJSON(res.Body, &body); err != nil {
		metrics.ObserveBackend(pathAvailability, outcomeDecodeError, time.Since(start))
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	metrics.ObserveBackend(pathAvailability, outcomeOK, time.Since(start))

	if body.Slots == nil {
		return []models.TimeSlot{}, nil
	}

	return body.Slots, nil
}

// Book submits a booking request. A 409 answer returns ErrSlotConflict
// without reading the body; any other answer must decode as {ok}.
func (c *Client) Book(ctx context.Context, req models.BookingRequest) (models.Reply, error) {
	const op = "client.backend.Book"

	start := time.Now()

	res, err := c.post(ctx, pathBook, req)
	if err != nil {
		metrics.ObserveBackend(pathBook, outcomeTransportError, time.Since(start))
		return models.Reply{}, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	reply := models.Reply{StatusCode: res.StatusCode}

	if res.StatusCode == http.StatusConflict {
		metrics.ObserveBackend(pathBook, outcomeConflict, time.Since(start))
		return reply, fmt.Errorf("%s: %w", op, ErrSlotConflict)
	}

	var body okResponse
	if err = render.DecodeJSON(res.Body, &body); err != nil {
		metrics.ObserveBackend(pathBook, outcomeDecodeError, time.Since(start))
		return reply, fmt.Errorf("%s: decode response: %w", op, err)
	}

	reply.OK = body.OK
	metrics.ObserveBackend(pathBook, replyOutcome(reply.OK), time.Since(start))

	return reply, nil
}

// SendContact submits a contact message. An undecodable body counts as {ok:false}.
func (c *Client) SendContact(ctx context.Context, msg models.ContactMessage) (models.Reply, error) {
	const op = "client.backend.SendContact"

	start := time.Now()

	res, err := c.post(ctx, pathContact, msg)
	if err != nil {
		metrics.ObserveBackend(pathContact, outcomeTransportError, time.Since(start))
		return models.Reply{}, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	reply := models.Reply{StatusCode: res.StatusCode}

	var body okResponse
	if err = render.DecodeJSON(res.Body, &body); err != nil {
		metrics.ObserveBackend(pathContact, outcomeDecodeError, time.Since(start))
		return reply, nil
	}

	reply.OK = body.OK
	metrics.ObserveBackend(pathContact, replyOutcome(reply.Success()), time.Since(start))

	return reply, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

func replyOutcome(ok bool) string {
	if ok {
		return outcomeOK
	}
	return outcomeRejected
}
