package render

import (
	"encoding/json"
	"io"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
)

// JSON renders frames as a single JSON document.
type JSON struct{}

type jsonFrame struct {
	Locale       string            `json:"locale"`
	Layout       Layout            `json:"layout"`
	Shown        int               `json:"shown"`
	Total        int               `json:"total"`
	Count        string            `json:"count"`
	Chips        []display.Chip    `json:"active_filters"`
	Message      string            `json:"message,omitempty"`
	Certificates []*catalog.Record `json:"certificates"`
}

func (JSON) Render(w io.Writer, f Frame) error {
	out := jsonFrame{
		Locale:       f.Locale.String(),
		Layout:       f.Layout,
		Shown:        f.Shown,
		Total:        f.Total,
		Count:        f.Count,
		Chips:        f.Chips,
		Certificates: f.Records,
	}
	if out.Chips == nil {
		out.Chips = []display.Chip{}
	}
	if out.Certificates == nil {
		out.Certificates = []*catalog.Record{}
	}
	if f.Empty {
		out.Message = f.Message
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
