package models

type TimeSlot struct {
	TimeSlot string `json:"time_slot"`
	Booked   bool   `json:"booked"`
}
