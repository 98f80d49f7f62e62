package display

import (
	"fmt"

	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
)

// ChipKind identifies which constraint a chip removes.
type ChipKind int

const (
	ChipDomain ChipKind = iota
	ChipYear
	ChipSearch
	ChipSkill
)

func (k ChipKind) String() string {
	switch k {
	case ChipDomain:
		return "domain"
	case ChipYear:
		return "year"
	case ChipSearch:
		return "search"
	case ChipSkill:
		return "skill"
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k ChipKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Chip is one removable active-filter indicator.
type Chip struct {
	Kind  ChipKind `json:"kind"`
	Value string   `json:"value"`
	Label string   `json:"label"`
}

// ActiveFilters returns one chip per active constraint of c: domain, year,
// search, then one chip per selected skill.
func ActiveFilters(c filter.Criteria, l locale.Labels) []Chip {
	var out []Chip
	if v, ok := c.Domain.Value(); ok {
		out = append(out, Chip{Kind: ChipDomain, Value: v, Label: l.ChipDomain + HumanizeDomain(v)})
	}
	if v, ok := c.Year.Value(); ok {
		out = append(out, Chip{Kind: ChipYear, Value: v, Label: l.ChipYear + v})
	}
	if q := filter.Normalize(c.Search); q != "" {
		out = append(out, Chip{Kind: ChipSearch, Value: q, Label: l.ChipSearch + q})
	}
	for _, s := range c.Skills {
		out = append(out, Chip{Kind: ChipSkill, Value: s, Label: l.ChipSkills + s})
	}
	return out
}

// ResultsCount phrases how many records are shown out of total.
func ResultsCount(shown, total int, l locale.Labels) string {
	if shown == total {
		return fmt.Sprintf(l.CountAll, total)
	}
	return fmt.Sprintf(l.CountPartial, shown, total)
}
