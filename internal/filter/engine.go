// Package filter computes the ordered, filtered view of a certificate catalog.
package filter

import (
	"strings"

	"github.com/kamusis/certview/internal/catalog"
)

// ComputeView returns the records of all that satisfy c, ordered by c.Sort.
//
// The result holds the same pointers as all; records are never copied or
// modified. all itself is not reordered.
func ComputeView(all []*catalog.Record, c Criteria) []*catalog.Record {
	c = c.normalized()
	out := make([]*catalog.Record, 0, len(all))
	for _, r := range all {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	SortRecords(out, c.Sort)
	return out
}

// Matches reports whether r satisfies every constraint in c.
func Matches(r *catalog.Record, c Criteria) bool {
	return matches(r, c.normalized())
}

func matches(r *catalog.Record, c Criteria) bool {
	return matchesSearch(r, c.Search) &&
		c.Domain.Matches(r.Domain) &&
		c.Year.Matches(r.Year) &&
		hasAllSkills(r, c.Skills)
}

func matchesSearch(r *catalog.Record, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Domain), q) {
		return true
	}
	for _, s := range r.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return r.Folder != "" && strings.Contains(strings.ToLower(r.Folder), q)
}

// hasAllSkills implements AND semantics: every token must match one of the
// record's skills after normalization.
func hasAllSkills(r *catalog.Record, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	if len(r.Skills) == 0 {
		return false
	}
	have := make(map[string]struct{}, len(r.Skills))
	for _, s := range r.Skills {
		have[Normalize(s)] = struct{}{}
	}
	for _, tok := range tokens {
		if _, ok := have[tok]; !ok {
			return false
		}
	}
	return true
}
