package viewer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/display"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
	"github.com/kamusis/certview/internal/render"
)

func testCatalog() *catalog.Catalog {
	return catalog.FromDocument(&catalog.Document{Certificates: []catalog.Record{
		{Title: "A", Domain: "x", Year: "2024", Skills: []string{"go", "rust"}},
		{Title: "B", Domain: "x", Year: "2025", Skills: []string{"Go"}},
		{Title: "C", Domain: "cloud_computing", Year: "2023", Skills: []string{"AWS"}},
	}})
}

func titles(recs []*catalog.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

// frameSink forwards every rendered frame to a channel.
type frameSink struct{ frames chan render.Frame }

func (s frameSink) Render(_ io.Writer, f render.Frame) error {
	s.frames <- f
	return nil
}

func TestController_EmptyBeforeLoad(t *testing.T) {
	c := New(nil, Options{})
	assert.Empty(t, c.View())
	f := c.Frame()
	assert.True(t, f.Empty)
	assert.Equal(t, "No certificates found matching your filters.", f.Message)
	assert.Equal(t, "Showing 0 certificates", f.Count)
	assert.Equal(t, catalog.StateEmpty, c.State())
}

func TestController_DefaultViewAndSkills(t *testing.T) {
	c := New(nil, Options{})
	require.NoError(t, c.SetCatalog(testCatalog()))
	assert.Equal(t, []string{"B", "A", "C"}, titles(c.View()))

	require.NoError(t, c.ToggleSkill("GO"))
	assert.Equal(t, []string{"B", "A"}, titles(c.View()))
	require.NoError(t, c.ToggleSkill("rust"))
	assert.Equal(t, []string{"A"}, titles(c.View()))
	assert.Equal(t, "Showing 1 of 3 certificates", c.Frame().Count)

	chips := c.Frame().Chips
	require.Len(t, chips, 2)
	require.NoError(t, c.RemoveChip(chips[1]))
	assert.Equal(t, []string{"B", "A"}, titles(c.View()))
	assert.True(t, c.IsSelected("go"))
	assert.False(t, c.IsSelected("rust"))
}

func TestController_RemoveChipRevertsOneConstraint(t *testing.T) {
	c := New(nil, Options{})
	require.NoError(t, c.SetCatalog(testCatalog()))
	require.NoError(t, c.SetDomain(filter.Exactly("x")))
	require.NoError(t, c.SetYear(filter.Exactly("2024")))
	require.NoError(t, c.SetSearch("  A "))
	require.Len(t, c.Frame().Chips, 3)

	var yearChip display.Chip
	for _, ch := range c.Frame().Chips {
		if ch.Kind == display.ChipYear {
			yearChip = ch
		}
	}
	require.NoError(t, c.RemoveChip(yearChip))
	crit := c.Criteria()
	assert.False(t, crit.Year.IsSet())
	assert.True(t, crit.Domain.IsSet())
	assert.Equal(t, "a", crit.Search)
}

func TestController_ClearFilters(t *testing.T) {
	c := New(nil, Options{})
	require.NoError(t, c.SetCatalog(testCatalog()))
	require.NoError(t, c.SetSort(filter.SortTitleAsc))
	require.NoError(t, c.SetDomain(filter.Exactly("cloud_computing")))
	require.NoError(t, c.ToggleSkill("aws"))
	assert.Equal(t, []string{"C"}, titles(c.View()))

	require.NoError(t, c.ClearFilters())
	assert.Equal(t, []string{"B", "A", "C"}, titles(c.View()))
	assert.Empty(t, c.Frame().Chips)
	assert.Equal(t, "Showing 3 certificates", c.Frame().Count)
}

func TestController_LoadFailure(t *testing.T) {
	var buf bytes.Buffer
	c := New(nil, Options{Sink: render.NewText(), Out: &buf, Locale: locale.French})
	err := c.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrLoadFailed))
	assert.Equal(t, catalog.StateFailed, c.State())

	f := c.Frame()
	assert.True(t, f.Failed)
	assert.Equal(t, locale.For(locale.French).LoadFailed, f.Message)
	assert.Contains(t, buf.String(), "Impossible de charger")
}

func TestController_RendersOnEveryMutation(t *testing.T) {
	sink := frameSink{frames: make(chan render.Frame, 8)}
	c := New(nil, Options{Sink: sink, Out: io.Discard})
	require.NoError(t, c.SetCatalog(testCatalog()))
	require.NoError(t, c.SwitchLayout())
	require.NoError(t, c.SetLocale(locale.French))

	require.Len(t, sink.frames, 3)
	<-sink.frames
	f := <-sink.frames
	assert.Equal(t, render.LayoutGrid, f.Layout)
	f = <-sink.frames
	assert.Equal(t, locale.French, f.Locale)
	assert.Equal(t, "Affichage de 3 certificats", f.Count)
}

func TestController_AttachDefersRendering(t *testing.T) {
	sink := frameSink{frames: make(chan render.Frame, 8)}
	c := New(nil, Options{})
	require.NoError(t, c.SetCatalog(testCatalog()))
	require.NoError(t, c.SetYear(filter.Exactly("2024")))
	require.NoError(t, c.SetSearch("a"))

	require.NoError(t, c.Attach(sink, io.Discard))
	require.Len(t, sink.frames, 1)
	f := <-sink.frames
	assert.Equal(t, []string{"A"}, titles(f.Records))
	assert.Len(t, f.Chips, 2)
}

func TestController_LocaleSubscriptionIsIdempotent(t *testing.T) {
	sink := frameSink{frames: make(chan render.Frame, 8)}
	c := New(nil, Options{Sink: sink, Out: io.Discard})
	require.NoError(t, c.SetCatalog(testCatalog()))
	<-sink.frames

	langs := make(chan locale.Locale)
	assert.True(t, c.SubscribeLocale(langs))
	assert.False(t, c.SubscribeLocale(langs))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	langs <- locale.French
	select {
	case f := <-sink.frames:
		assert.Equal(t, locale.French, f.Locale)
	case <-time.After(2 * time.Second):
		t.Fatal("locale change was not applied")
	}
	select {
	case <-sink.frames:
		t.Fatal("locale change fired twice")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	<-done
	c.Close()
}

func TestController_WatchReloadsDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learning-data.json")
	require.NoError(t, catalog.WriteFile(path, &catalog.Document{Certificates: []catalog.Record{
		{Title: "A", Domain: "x", Year: "2024"},
	}}))

	sink := frameSink{frames: make(chan render.Frame, 8)}
	c := New(nil, Options{Sink: sink, Out: io.Discard})
	require.NoError(t, c.Load(context.Background(), path))
	<-sink.frames

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := WatchDataset(ctx, path, nil)
	require.NoError(t, err)
	defer w.Close()
	require.True(t, c.SubscribeReload(w.Changes()))

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.NoError(t, catalog.WriteFile(path, &catalog.Document{Certificates: []catalog.Record{
		{Title: "A", Domain: "x", Year: "2024"},
		{Title: "B", Domain: "x", Year: "2025"},
	}}))

	select {
	case f := <-sink.frames:
		assert.Equal(t, 2, f.Total)
	case <-time.After(5 * time.Second):
		t.Fatal("dataset change was not picked up")
	}
	cancel()
	<-done
}
