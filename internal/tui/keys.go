package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search      key.Binding
	Domain      key.Binding
	Year        key.Binding
	Sort        key.Binding
	Layout      key.Binding
	Locale      key.Binding
	NextSkill   key.Binding
	PrevSkill   key.Binding
	ToggleSkill key.Binding
	RemoveLast  key.Binding
	Clear       key.Binding
	Reload      key.Binding
	Down        key.Binding
	Up          key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Domain:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "domain")),
		Year:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Layout:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid/list")),
		Locale:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "en/fr")),
		NextSkill:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next skill")),
		PrevSkill:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev skill")),
		ToggleSkill: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle skill")),
		RemoveLast:  key.NewBinding(key.WithKeys("backspace", "x"), key.WithHelp("x", "remove last filter")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Search, k.Domain, k.Year, k.Sort, k.NextSkill, k.ToggleSkill, k.RemoveLast, k.Clear, k.Layout, k.Locale, k.Quit}
}
