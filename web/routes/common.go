package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/avlae/solgrid/grid"
	"github.com/avlae/solgrid/hover"
	"github.com/avlae/solgrid/model"
	"github.com/avlae/solgrid/palette"
)

// ServerHandler holds all dependencies needed for the web server
// handlers. Records are loaded once at startup; the handlers only read.
type ServerHandler struct {
	Records []model.DayRecord
	Layout  grid.Layout
	Palette palette.Palette
	Hover   hover.Config
	Title   string
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}
