package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamusis/certview/internal/locale"
	"github.com/kamusis/certview/internal/render"
)

type styles struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Skill    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Skill:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Cursor:   lipgloss.NewStyle().Underline(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	c := m.ctrl
	labels := locale.For(c.Locale())
	crit := c.Criteria()

	var head strings.Builder
	layout := labels.ListView
	if c.Layout() == render.LayoutGrid {
		layout = labels.GridView
	}
	fmt.Fprintf(&head, "%s  %s %s  %s %s\n",
		m.styles.Header.Render("certview"),
		m.styles.Label.Render(labels.Sort+":"), m.styles.Value.Render(string(crit.Sort)),
		m.styles.Label.Render("·"), m.styles.Value.Render(layout),
	)
	head.WriteString(m.input.View())
	head.WriteString("\n")
	fmt.Fprintf(&head, "%s%s   %s%s\n",
		m.styles.Label.Render(labels.ChipDomain), m.styles.Value.Render(matchLabel(crit.Domain, labels.AllDomains, true)),
		m.styles.Label.Render(labels.ChipYear), m.styles.Value.Render(matchLabel(crit.Year, labels.AllYears, false)),
	)
	head.WriteString(m.renderSkillBar(labels))
	head.WriteString("\n")
	if m.err != nil {
		head.WriteString(m.styles.Error.Render(m.err.Error()))
		head.WriteString("\n")
	}
	head.WriteString("\n")

	sink := *m.sink
	if m.width > 0 {
		sink.Columns = max(1, m.width/(sink.CardWidth+2))
	}
	var body strings.Builder
	if err := sink.Render(&body, c.Frame()); err != nil {
		body.WriteString(m.styles.Error.Render(err.Error()))
	}

	foot := m.renderHelp()
	return head.String() + m.clip(body.String(), lipgloss.Height(head.String())+1) + "\n" + foot
}

func (m Model) renderSkillBar(labels locale.Labels) string {
	bar := m.skillBar()
	if len(bar) == 0 {
		return m.styles.Label.Render(labels.ChipSkills + "-")
	}
	parts := make([]string, len(bar))
	for i, sc := range bar {
		text := fmt.Sprintf("%s(%d)", sc.Skill, sc.Count)
		st := m.styles.Skill
		if m.ctrl.IsSelected(sc.Skill) {
			st = m.styles.Selected
			text = "✓" + text
		}
		if i == m.skillIdx {
			st = st.Inherit(m.styles.Cursor)
		}
		parts[i] = st.Render(text)
	}
	line := m.styles.Label.Render(labels.ChipSkills) + strings.Join(parts, " ")
	if m.width > 0 {
		line = lipgloss.NewStyle().Width(m.width).Render(line)
	}
	return line
}

func (m Model) renderHelp() string {
	bindings := m.keys.help()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " · "))
}

// clip scrolls body by the model offset and trims it to the space left under
// a header of used lines.
func (m Model) clip(body string, used int) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	off := min(m.offset, max(0, len(lines)-1))
	lines = lines[off:]
	if m.height > 0 {
		avail := max(1, m.height-used-1)
		if len(lines) > avail {
			lines = lines[:avail]
		}
	}
	return strings.Join(lines, "\n")
}
