package page

import (
	"bytes"
	"net/http"

	"github.com/go-chi/render"
)

// Write renders the page and sends it with status. Nothing is written when
// rendering fails.
func (p *Page) Write(w http.ResponseWriter, r *http.Request, status int) error {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return err
	}

	render.Status(r, status)
	render.HTML(w, r, buf.String())

	return nil
}
