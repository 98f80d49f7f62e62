package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
)

// Styles groups the lipgloss styles used for terminal output.
type Styles struct {
	Title   lipgloss.Style
	Meta    lipgloss.Style
	Skill   lipgloss.Style
	Link    lipgloss.Style
	Chip    lipgloss.Style
	Count   lipgloss.Style
	Message lipgloss.Style
	Card    lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Skill:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Link:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("6")),
		Chip:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Count:   lipgloss.NewStyle().Italic(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

// Text renders frames for a terminal.
type Text struct {
	Styles Styles
	// Columns and CardWidth shape the grid layout.
	Columns   int
	CardWidth int
}

// NewText returns a terminal sink with the default styles.
func NewText() *Text {
	return &Text{Styles: DefaultStyles(), Columns: 3, CardWidth: 34}
}

func (t *Text) Render(w io.Writer, f Frame) error {
	var b strings.Builder
	if len(f.Chips) > 0 {
		labels := make([]string, len(f.Chips))
		for i, c := range f.Chips {
			labels[i] = t.Styles.Chip.Render("[" + c.Label + " ×]")
		}
		b.WriteString(strings.Join(labels, " "))
		b.WriteString("\n")
	}
	if f.Count != "" {
		b.WriteString(t.Styles.Count.Render(f.Count))
		b.WriteString("\n\n")
	}

	if f.Empty || len(f.Records) == 0 {
		b.WriteString(t.Styles.Message.Render(f.Message))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	if f.Layout == LayoutGrid {
		b.WriteString(t.grid(f))
	} else {
		b.WriteString(t.list(f))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Text) list(f Frame) string {
	var b strings.Builder
	for i, r := range f.Records {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, t.Styles.Title.Render(r.Title))
		if meta := t.meta(r); meta != "" {
			fmt.Fprintf(&b, "     %s\n", meta)
		}
		if skills := display.CardSkills(r); len(skills) > 0 {
			fmt.Fprintf(&b, "     %s\n", t.Styles.Skill.Render(strings.Join(skills, " · ")))
		}
		if r.Path != "" {
			fmt.Fprintf(&b, "     %s\n", t.Styles.Link.Render(r.Path))
		}
	}
	return b.String()
}

func (t *Text) grid(f Frame) string {
	cols := t.Columns
	if cols <= 0 {
		cols = 1
	}
	card := t.Styles.Card.Width(t.CardWidth)

	var rows []string
	var row []string
	for _, r := range f.Records {
		lines := []string{t.Styles.Title.Render(r.Title)}
		if meta := t.meta(r); meta != "" {
			lines = append(lines, meta)
		}
		if skills := display.CardSkills(r); len(skills) > 0 {
			lines = append(lines, t.Styles.Skill.Render(strings.Join(skills, " · ")))
		}
		row = append(row, card.Render(strings.Join(lines, "\n")))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (t *Text) meta(r *catalog.Record) string {
	var parts []string
	if d := display.RecordDate(r); d != "" {
		parts = append(parts, d)
	}
	if r.Duration != "" {
		parts = append(parts, r.Duration)
	}
	if r.Domain != "" {
		parts = append(parts, display.HumanizeDomain(r.Domain))
	}
	return t.Styles.Meta.Render(strings.Join(parts, "  "))
}
