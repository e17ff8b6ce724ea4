package page

import "pickleClub/internal/config"

type Feature struct {
	Title       string
	Icon        string
	Description string
}

// Content is the static text of the hero, features, contact and footer sections.
type Content struct {
	ClubName string
	Headline string
	Tagline  string
	Features []Feature
	Phone    string
	Email    string
	Address  string
}

func NewContent(club config.Club) Content {
	return Content{
		ClubName: club.Name,
		Headline: "Smash your game at our " + club.Name,
		Tagline:  "Premium indoor/outdoor courts, easy online booking, lessons and leagues for all levels.",
		Features: []Feature{
			{Title: "4 Indoor + 4 Outdoor Courts", Icon: "check", Description: "Pro-surface, tournament lines, night lighting"},
			{Title: "Open Play & Leagues", Icon: "calendar", Description: "Beginner to advanced — meet your match"},
			{Title: "Coaching & Clinics", Icon: "clock", Description: "Certified coaches, private & group sessions"},
		},
		Phone:   club.Phone,
		Email:   club.Email,
		Address: club.Address,
	}
}
