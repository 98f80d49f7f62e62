// Package tui is the interactive catalog browser behind `certview browse`.
//
// The bubbletea update loop owns the viewer.Controller: every key press is
// turned into a controller mutation and the next View draws the recomputed
// frame. Dataset change notifications are delivered as messages so that
// reloads also happen on the update loop.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamusis/certview/internal/display"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
	"github.com/kamusis/certview/internal/render"
	"github.com/kamusis/certview/internal/viewer"
)

// DefaultMaxSkills is how many of the most common skills the skill bar offers.
const DefaultMaxSkills = 15

// Options configures a Model.
type Options struct {
	// Changes, when set, triggers a catalog reload on every value.
	Changes <-chan struct{}
	// MaxSkills caps the skill bar; 0 means DefaultMaxSkills.
	MaxSkills int
}

// changeMsg reports a dataset change; ok is false once the source is closed.
type changeMsg struct{ ok bool }

// Model is the bubbletea model of the browser.
type Model struct {
	ctx    context.Context
	ctrl   *viewer.Controller
	sink   *render.Text
	keys   keyMap
	styles styles
	input  textinput.Model

	changes   <-chan struct{}
	maxSkills int

	searching bool
	skillIdx  int
	offset    int
	width     int
	height    int
	err       error
	quitting  bool
}

// New returns a browser over ctrl. ctrl must not have a sink attached; the
// model draws frames itself.
func New(ctx context.Context, ctrl *viewer.Controller, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.MaxSkills <= 0 {
		opts.MaxSkills = DefaultMaxSkills
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Width = 40
	ti.Placeholder = locale.For(ctrl.Locale()).SearchHint
	ti.SetValue(ctrl.Criteria().Search)

	return Model{
		ctx:       ctx,
		ctrl:      ctrl,
		sink:      render.NewText(),
		keys:      defaultKeyMap(),
		styles:    defaultStyles(),
		input:     ti,
		changes:   opts.Changes,
		maxSkills: opts.MaxSkills,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		_, ok := <-ch
		return changeMsg{ok: ok}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width/2)
		return m, nil

	case changeMsg:
		if !msg.ok {
			m.changes = nil
			return m, nil
		}
		// A failed reload is shown as the load-failure frame.
		m.err = nil
		_ = m.ctrl.Reload(m.ctx)
		m.clampSkill()
		return m, m.waitForChange()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.setErr(m.ctrl.SetSearch(m.input.Value()))
	m.offset = 0
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.ctrl
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Domain):
		m.setErr(c.SetDomain(cycleMatch(c.Criteria().Domain, c.Catalog().Domains())))

	case key.Matches(msg, m.keys.Year):
		m.setErr(c.SetYear(cycleMatch(c.Criteria().Year, c.Catalog().Years())))

	case key.Matches(msg, m.keys.Sort):
		m.setErr(c.SetSort(nextSort(c.Criteria().Sort)))

	case key.Matches(msg, m.keys.Layout):
		m.setErr(c.SwitchLayout())

	case key.Matches(msg, m.keys.Locale):
		m.setErr(c.SetLocale(c.Locale().Toggle()))
		m.input.Placeholder = locale.For(c.Locale()).SearchHint

	case key.Matches(msg, m.keys.NextSkill):
		if n := len(m.skillBar()); n > 0 {
			m.skillIdx = (m.skillIdx + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevSkill):
		if n := len(m.skillBar()); n > 0 {
			m.skillIdx = (m.skillIdx - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleSkill):
		bar := m.skillBar()
		if m.skillIdx < len(bar) {
			m.setErr(c.ToggleSkill(bar[m.skillIdx].Skill))
		}

	case key.Matches(msg, m.keys.RemoveLast):
		chips := display.ActiveFilters(c.Criteria(), locale.For(c.Locale()))
		if len(chips) > 0 {
			last := chips[len(chips)-1]
			if last.Kind == display.ChipSearch {
				m.input.SetValue("")
			}
			m.setErr(c.RemoveChip(last))
		}

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.setErr(c.ClearFilters())

	case key.Matches(msg, m.keys.Reload):
		m.err = nil
		_ = c.Reload(m.ctx)
		m.clampSkill()

	case key.Matches(msg, m.keys.Down):
		m.offset++
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.offset > 0 {
			m.offset--
		}
		return m, nil

	default:
		return m, nil
	}
	m.offset = 0
	return m, nil
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.err = err
	}
}

func (m *Model) clampSkill() {
	if n := len(m.skillBar()); m.skillIdx >= n {
		m.skillIdx = 0
	}
}

// skillBar returns the skills offered for toggling, most common first.
func (m Model) skillBar() []filter.SkillCount {
	counts := m.ctrl.SkillCounts()
	if len(counts) > m.maxSkills {
		counts = counts[:m.maxSkills]
	}
	return counts
}

// cycleMatch advances cur through all → values[0] → ... → all.
func cycleMatch(cur filter.Match, values []string) filter.Match {
	v, ok := cur.Value()
	if !ok {
		if len(values) == 0 {
			return filter.Any()
		}
		return filter.Exactly(values[0])
	}
	for i, s := range values {
		if s == v && i+1 < len(values) {
			return filter.Exactly(values[i+1])
		}
	}
	return filter.Any()
}

func nextSort(cur filter.SortKey) filter.SortKey {
	keys := filter.SortKeys()
	for i, k := range keys {
		if k == cur {
			return keys[(i+1)%len(keys)]
		}
	}
	return filter.DefaultSort
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Err returns the last controller error, if any.
func (m Model) Err() error { return m.err }

func matchLabel(m filter.Match, all string, humanize bool) string {
	v, ok := m.Value()
	if !ok {
		return all
	}
	if humanize {
		return display.HumanizeDomain(v)
	}
	return strings.TrimSpace(v)
}
