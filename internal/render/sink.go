// Package render turns a computed view into terminal text, HTML, or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
	"github.com/kamusis/certview/internal/locale"
)

// Layout is one of the two presentation layouts.
type Layout string

const (
	LayoutList Layout = "list"
	LayoutGrid Layout = "grid"
)

// ParseLayout validates s; "" means list.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutList:
		return LayoutList, nil
	case LayoutGrid:
		return LayoutGrid, nil
	}
	return "", fmt.Errorf("unknown layout %q (want list or grid)", s)
}

// Toggle returns the other layout.
func (l Layout) Toggle() Layout {
	if l == LayoutGrid {
		return LayoutList
	}
	return LayoutGrid
}

// Frame is everything a sink needs to draw one view.
type Frame struct {
	Locale  locale.Locale
	Labels  locale.Labels
	Layout  Layout
	Records []*catalog.Record
	Chips   []display.Chip
	Shown   int
	Total   int
	Count   string
	// Empty is set when there is nothing to show; Message then carries the
	// localized no-results or load-failure text.
	Empty   bool
	Failed  bool
	Message string
}

// Sink draws frames.
type Sink interface {
	Render(w io.Writer, f Frame) error
}

// New returns the sink for format: "text", "html" or "json".
func New(format string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewText(), nil
	case "html":
		return NewHTML(), nil
	case "json":
		return JSON{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, html or json)", format)
}
