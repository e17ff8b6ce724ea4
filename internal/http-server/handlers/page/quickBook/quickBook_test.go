package quickBook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pickleClub/internal/client/backend"
	"pickleClub/internal/config"
	"pickleClub/internal/http-server/handlers/page/quickBook/mocks"
	"pickleClub/internal/lib/logger/handlers/slogdiscard"
	"pickleClub/internal/models"
	"pickleClub/internal/view/page"
	pagemocks "pickleClub/internal/view/page/mocks"
	"pickleClub/internal/view/quickbook"
)

const jsonBody = `{"date":"2026-10-20","time_slot":"18:00-19:00","court_id":"court-2",` +
	`"full_name":"Dana Dink","email":"dana@example.com","phone":"555-0100","notes":"bring paddles"}`

var booking = models.BookingRequest{
	Date:     "2026-10-20",
	TimeSlot: "18:00-19:00",
	CourtID:  "court-2",
	FullName: "Dana Dink",
	Email:    "dana@example.com",
	Phone:    "555-0100",
	Notes:    "bring paddles",
}

func newSite(t *testing.T, b page.Backend) *page.Site {
	t.Helper()

	now := func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	return page.NewSite(slogdiscard.NewDiscardLogger(), b, page.NewContent(config.Club{Name: "Pickleball Club"}), now)
}

func submission(kind models.SubmissionKind, outcome string, status int) interface{} {
	return mock.MatchedBy(func(sub models.Submission) bool {
		return sub.Kind == kind &&
			sub.Outcome == outcome &&
			sub.StatusCode == status &&
			sub.Email == "dana@example.com"
	})
}

func TestQuickBookJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(b *pagemocks.Backend, s *mocks.SubmissionSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Confirmed",
			requestBody: jsonBody,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).Return(models.Reply{StatusCode: http.StatusOK, OK: true}, nil).Once()
				s.On("SaveSubmission", mock.Anything, submission(models.SubmissionBooking, "confirmed", http.StatusOK)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking confirmed! Check your email for details.","outcome":"confirmed"}`,
		},
		{
			name:        "Slot conflict",
			requestBody: jsonBody,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).
					Return(models.Reply{StatusCode: http.StatusConflict}, fmt.Errorf("client.backend.Book: %w", backend.ErrSlotConflict)).Once()
				s.On("SaveSubmission", mock.Anything, submission(models.SubmissionBooking, "conflict", http.StatusConflict)).Return(nil).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"That slot just got booked. Please pick another one.","outcome":"conflict"}`,
		},
		{
			name:        "Rejected",
			requestBody: jsonBody,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).Return(models.Reply{StatusCode: http.StatusOK, OK: false}, nil).Once()
				s.On("SaveSubmission", mock.Anything, submission(models.SubmissionBooking, "rejected", http.StatusOK)).Return(nil).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"Could not create booking, please try again.","outcome":"rejected"}`,
		},
		{
			name:        "Backend unreachable",
			requestBody: jsonBody,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).Return(models.Reply{}, errors.New("connection refused")).Once()
				s.On("SaveSubmission", mock.Anything, submission(models.SubmissionBooking, "error", 0)).Return(nil).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"Error submitting booking.","outcome":"error"}`,
		},
		{
			name:        "Journal failure does not change the answer",
			requestBody: jsonBody,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).Return(models.Reply{StatusCode: http.StatusOK, OK: true}, nil).Once()
				s.On("SaveSubmission", mock.Anything, mock.Anything).Return(errors.New("database is down")).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking confirmed! Check your email for details.","outcome":"confirmed"}`,
		},
		{
			name:        "Missing court uses default",
			requestBody: `{"date":"2026-10-20","time_slot":"18:00-19:00","full_name":"Dana Dink","email":"dana@example.com"}`,
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, models.BookingRequest{
					Date:     "2026-10-20",
					TimeSlot: "18:00-19:00",
					CourtID:  quickbook.DefaultCourtID,
					FullName: "Dana Dink",
					Email:    "dana@example.com",
				}).Return(models.Reply{StatusCode: http.StatusOK, OK: true}, nil).Once()
				s.On("SaveSubmission", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing email",
			requestBody:    `{"date":"2026-10-20","time_slot":"18:00-19:00","full_name":"Dana Dink"}`,
			mockSetup:      func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is a required field"}`,
		},
		{
			name:           "Invalid email",
			requestBody:    `{"date":"2026-10-20","time_slot":"18:00-19:00","full_name":"Dana Dink","email":"dana"}`,
			mockSetup:      func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email"}`,
		},
		{
			name:           "Invalid date",
			requestBody:    `{"date":"20/10/2026","time_slot":"18:00-19:00","full_name":"Dana Dink","email":"dana@example.com"}`,
			mockSetup:      func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Date must be a date in YYYY-MM-DD format"}`,
		},
		{
			name:           "Empty body",
			requestBody:    `{}`,
			mockSetup:      func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "field Date is a required field")
				assert.Contains(t, body, "field TimeSlot is a required field")
				assert.Contains(t, body, "field FullName is a required field")
				assert.Contains(t, body, "field Email is a required field")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := pagemocks.NewBackend(t)
			saver := mocks.NewSubmissionSaver(t)
			tc.mockSetup(b, saver)

			handler := New(slogdiscard.NewDiscardLogger(), newSite(t, b), saver)

			req, err := http.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")

			router := chi.NewRouter()
			router.Post("/book", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func formBody(date, timeSlot, fullName, email string) string {
	v := url.Values{}
	v.Set("date", date)
	v.Set("time_slot", timeSlot)
	v.Set("court_id", "court-2")
	v.Set("full_name", fullName)
	v.Set("email", email)
	v.Set("phone", "555-0100")
	v.Set("notes", "bring paddles")

	return v.Encode()
}

func TestQuickBookForm(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(b *pagemocks.Backend, s *mocks.SubmissionSaver)
		expectedStatus int
		contains       []string
	}{
		{
			name:        "Confirmed",
			requestBody: formBody("2026-10-20", "18:00-19:00", "Dana Dink", "dana@example.com"),
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).Return(models.Reply{StatusCode: http.StatusOK, OK: true}, nil).Once()
				b.On("Availability", mock.Anything, "2026-10-20").
					Return([]models.TimeSlot{{TimeSlot: "18:00-19:00", Booked: true}}, nil).Once()
				s.On("SaveSubmission", mock.Anything, submission(models.SubmissionBooking, "confirmed", http.StatusOK)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			contains: []string{
				`data-time="18:00-19:00" disabled>Booked</button>`,
				`<p class="status">Booking confirmed! Check your email for details.</p>`,
				`name="full_name" value="Dana Dink"`,
				`name="date" value="2026-10-20"`,
			},
		},
		{
			name:        "Conflict",
			requestBody: formBody("2026-10-20", "18:00-19:00", "Dana Dink", "dana@example.com"),
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Book", mock.Anything, booking).
					Return(models.Reply{StatusCode: http.StatusConflict}, backend.ErrSlotConflict).Once()
				b.On("Availability", mock.Anything, "2026-10-20").Return([]models.TimeSlot{}, nil).Once()
				s.On("SaveSubmission", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusConflict,
			contains:       []string{"That slot just got booked. Please pick another one."},
		},
		{
			name:        "Validation error keeps input",
			requestBody: formBody("2026-10-20", "18:00-19:00", "", "dana@example.com"),
			mockSetup: func(b *pagemocks.Backend, s *mocks.SubmissionSaver) {
				b.On("Availability", mock.Anything, "2026-10-20").Return([]models.TimeSlot{}, nil).Once()
			},
			expectedStatus: http.StatusBadRequest,
			contains: []string{
				`<p class="status">field FullName is a required field</p>`,
				`name="email" value="dana@example.com"`,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := pagemocks.NewBackend(t)
			saver := mocks.NewSubmissionSaver(t)
			tc.mockSetup(b, saver)

			handler := New(slogdiscard.NewDiscardLogger(), newSite(t, b), saver)

			req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("Accept", "text/html,application/xhtml+xml")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}

func TestQuickBookBackendCalls(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		contentType   string
		accept        string
		body          string
		expectedPaths []string
	}{
		{
			name:          "JSON submit only writes",
			contentType:   "application/json",
			accept:        "application/json",
			body:          jsonBody,
			expectedPaths: []string{"/api/book"},
		},
		{
			name:          "Page submit reads the booked day after the write",
			contentType:   "application/x-www-form-urlencoded",
			accept:        "text/html",
			body:          formBody("2026-10-20", "18:00-19:00", "Dana Dink", "dana@example.com"),
			expectedPaths: []string{"/api/book", "/api/availability 2026-10-20"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				mu    sync.Mutex
				paths []string
			)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body struct {
					Date string `json:"date"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

				entry := r.URL.Path
				if r.URL.Path == "/api/availability" {
					entry += " " + body.Date
				}

				mu.Lock()
				paths = append(paths, entry)
				mu.Unlock()

				w.Header().Set("Content-Type", "application/json")
				if r.URL.Path == "/api/availability" {
					_, _ = w.Write([]byte(`{"slots":[]}`))
					return
				}
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			t.Cleanup(srv.Close)

			client := backend.New(srv.URL, time.Second)
			saver := mocks.NewSubmissionSaver(t)
			saver.On("SaveSubmission", mock.Anything, mock.Anything).Return(nil).Once()

			handler := New(slogdiscard.NewDiscardLogger(), newSite(t, client), saver)

			req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			req.Header.Set("Accept", tc.accept)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, tc.expectedPaths, paths)
		})
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, statusCode(quickbook.OutcomeConfirmed))
	assert.Equal(t, http.StatusConflict, statusCode(quickbook.OutcomeConflict))
	assert.Equal(t, http.StatusBadGateway, statusCode(quickbook.OutcomeRejected))
	assert.Equal(t, http.StatusBadGateway, statusCode(quickbook.OutcomeError))
}
