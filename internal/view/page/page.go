// Package page composes the hero, features, availability, quick-book,
// contact and footer sections into one HTML page.
package page

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"pickleClub/internal/view/availability"
	"pickleClub/internal/view/contact"
	"pickleClub/internal/view/quickbook"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("page").
		Funcs(template.FuncMap{"slotHref": slotHref}).
		ParseFS(templatesFS, "templates/*.html"),
)

type Page struct {
	Content
	Year int

	Availability *availability.Availability
	QuickBook    *quickbook.QuickBook
	Contact      *contact.Contact
}

type viewData struct {
	Content
	Year         int
	Availability availability.State
	QuickBook    quickbook.State
	Contact      contact.State
}

func (p *Page) Render(w io.Writer) error {
	data := viewData{
		Content:      p.Content,
		Year:         p.Year,
		Availability: p.Availability.State(),
		QuickBook:    p.QuickBook.State(),
		Contact:      p.Contact.State(),
	}

	return templates.ExecuteTemplate(w, "layout", data)
}

// slotHref links a slot to the quick-book form pre-filled with it.
func slotHref(date, timeSlot string) string {
	v := url.Values{}
	v.Set("date", date)
	v.Set("time_slot", timeSlot)

	return "/?" + v.Encode() + "#quick-book"
}
