package models

type BookingRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	CourtID  string `json:"court_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}
