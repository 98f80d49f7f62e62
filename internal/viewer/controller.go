// Package viewer owns the state of one catalog viewing session.
//
// A Controller is driven from a single goroutine. Each mutation recomputes the
// view synchronously and, when a sink is configured, renders it before
// returning. External notifications (locale changes, dataset reloads) arrive
// on channels and are applied by Run on the owning goroutine.
package viewer

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
	"github.com/kamusis/certview/internal/render"
)

// Options configures a Controller. The zero value is usable: no sink,
// English, list layout, date-desc.
type Options struct {
	Sink   render.Sink
	Out    io.Writer
	Locale locale.Locale
	Layout render.Layout
	Sort   filter.SortKey
	Logger *zap.Logger
}

// Controller is the explicit state of a viewing session.
type Controller struct {
	store  *catalog.Store
	source string

	search    string
	domain    filter.Match
	year      filter.Match
	sortKey   filter.SortKey
	selection filter.Selection

	layout render.Layout
	loc    locale.Locale
	view   []*catalog.Record

	sink render.Sink
	out  io.Writer
	log  *zap.Logger

	subs   map[any]struct{}
	events chan event
	done   chan struct{}
}

// New returns a controller over store. Until the store is loaded every view
// is empty.
func New(store *catalog.Store, opts Options) *Controller {
	if store == nil {
		store = catalog.NewStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Layout == "" {
		opts.Layout = render.LayoutList
	}
	if opts.Sort == "" {
		opts.Sort = filter.DefaultSort
	}
	c := &Controller{
		store:   store,
		sortKey: opts.Sort,
		layout:  opts.Layout,
		loc:     opts.Locale,
		sink:    opts.Sink,
		out:     opts.Out,
		log:     opts.Logger,
		subs:    map[any]struct{}{},
		events:  make(chan event, 16),
		done:    make(chan struct{}),
	}
	c.recompute()
	return c
}

// Load replaces the catalog with the dataset at source and refreshes. A
// failed load leaves an empty catalog and is rendered as the localized
// load-failure message; the error is still returned to the caller.
func (c *Controller) Load(ctx context.Context, source string) error {
	c.source = source
	err := c.store.Load(ctx, source)
	if err != nil {
		c.log.Debug("catalog load failed", zap.String("source", source), zap.Error(err))
	} else {
		c.log.Debug("catalog loaded", zap.String("source", source), zap.Int("records", len(c.store.Records())))
	}
	if rerr := c.refresh(); rerr != nil {
		return rerr
	}
	return err
}

// Reload loads the last source again.
func (c *Controller) Reload(ctx context.Context) error {
	return c.Load(ctx, c.source)
}

// SetCatalog installs an already decoded catalog.
func (c *Controller) SetCatalog(cat *catalog.Catalog) error {
	c.store.Set(cat)
	return c.refresh()
}

func (c *Controller) SetSearch(q string) error {
	c.search = filter.Normalize(q)
	return c.refresh()
}

func (c *Controller) SetDomain(m filter.Match) error {
	c.domain = m
	return c.refresh()
}

func (c *Controller) SetYear(m filter.Match) error {
	c.year = m
	return c.refresh()
}

func (c *Controller) SetSort(k filter.SortKey) error {
	if k == "" {
		k = filter.DefaultSort
	}
	c.sortKey = k
	return c.refresh()
}

// ToggleSkill flips the selection state of skill.
func (c *Controller) ToggleSkill(skill string) error {
	c.selection.Toggle(skill)
	return c.refresh()
}

// SelectSkill adds skill to the selection without toggling.
func (c *Controller) SelectSkill(skill string) error {
	c.selection.Add(skill)
	return c.refresh()
}

// RemoveChip reverts exactly the constraint chip stands for.
func (c *Controller) RemoveChip(chip display.Chip) error {
	switch chip.Kind {
	case display.ChipDomain:
		c.domain = filter.Any()
	case display.ChipYear:
		c.year = filter.Any()
	case display.ChipSearch:
		c.search = ""
	case display.ChipSkill:
		c.selection.Remove(chip.Value)
	}
	return c.refresh()
}

// ClearFilters resets search, domain, year, sort and the skill selection.
func (c *Controller) ClearFilters() error {
	c.search = ""
	c.domain = filter.Any()
	c.year = filter.Any()
	c.sortKey = filter.DefaultSort
	c.selection.Clear()
	return c.refresh()
}

// SetLayout switches between the grid and list layouts.
func (c *Controller) SetLayout(l render.Layout) error {
	c.layout = l
	return c.refresh()
}

// SwitchLayout flips the layout.
func (c *Controller) SwitchLayout() error {
	return c.SetLayout(c.layout.Toggle())
}

// SetLocale changes the UI language.
func (c *Controller) SetLocale(l locale.Locale) error {
	c.loc = l
	return c.refresh()
}

// Criteria returns the constraints of the current view.
func (c *Controller) Criteria() filter.Criteria {
	return filter.Criteria{
		Search: c.search,
		Domain: c.domain,
		Year:   c.year,
		Sort:   c.sortKey,
		Skills: c.selection.Values(),
	}
}

// View returns the current ordered, filtered records.
func (c *Controller) View() []*catalog.Record { return c.view }

func (c *Controller) Catalog() *catalog.Catalog { return c.store.Catalog() }
func (c *Controller) State() catalog.State      { return c.store.State() }
func (c *Controller) Layout() render.Layout     { return c.layout }
func (c *Controller) Locale() locale.Locale     { return c.loc }
func (c *Controller) IsSelected(s string) bool  { return c.selection.Contains(s) }

// SkillCounts lists the catalog's skills by popularity.
func (c *Controller) SkillCounts() []filter.SkillCount {
	return filter.SkillCounts(c.store.Records())
}

// Frame assembles everything a sink needs for the current view.
func (c *Controller) Frame() render.Frame {
	labels := locale.For(c.loc)
	total := len(c.store.Records())
	f := render.Frame{
		Locale:  c.loc,
		Labels:  labels,
		Layout:  c.layout,
		Records: c.view,
		Chips:   display.ActiveFilters(c.Criteria(), labels),
		Shown:   len(c.view),
		Total:   total,
		Empty:   len(c.view) == 0,
		Failed:  c.store.State() == catalog.StateFailed,
	}
	switch {
	case f.Failed:
		f.Message = labels.LoadFailed
	case f.Empty:
		f.Message = labels.NoResults
		f.Count = display.ResultsCount(f.Shown, total, labels)
	default:
		f.Count = display.ResultsCount(f.Shown, total, labels)
	}
	return f
}

// Attach sets the sink and writer used by Render and draws the current frame.
// Mutations made before Attach are not rendered.
func (c *Controller) Attach(sink render.Sink, w io.Writer) error {
	c.sink = sink
	c.out = w
	return c.Render()
}

// Render draws the current frame to the configured sink.
func (c *Controller) Render() error {
	if c.sink == nil || c.out == nil {
		return nil
	}
	return c.sink.Render(c.out, c.Frame())
}

func (c *Controller) recompute() {
	c.view = filter.ComputeView(c.store.Records(), c.Criteria())
}

func (c *Controller) refresh() error {
	c.recompute()
	c.log.Debug("view computed",
		zap.Int("shown", len(c.view)),
		zap.Int("total", len(c.store.Records())),
		zap.String("sort", string(c.sortKey)),
	)
	return c.Render()
}
