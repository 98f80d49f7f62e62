package filter

import (
	"fmt"
	"strings"
)

// AllValue is the user-facing spelling of an unset Match.
const AllValue = "all"

// Match is an optional exact-match constraint. The zero value matches
// everything.
type Match struct {
	value string
	set   bool
}

// Any returns a Match that accepts every value.
func Any() Match { return Match{} }

// Exactly returns a Match that accepts only v.
func Exactly(v string) Match { return Match{value: v, set: true} }

// ParseMatch converts a flag or UI value into a Match; "" and "all" are unset.
func ParseMatch(s string) Match {
	if s == "" || s == AllValue {
		return Any()
	}
	return Exactly(s)
}

// Value returns the constrained value and whether the Match is set.
func (m Match) Value() (string, bool) { return m.value, m.set }

// IsSet reports whether the Match constrains anything.
func (m Match) IsSet() bool { return m.set }

// Matches reports whether v satisfies the constraint (exact, case-sensitive).
func (m Match) Matches(v string) bool { return !m.set || m.value == v }

func (m Match) String() string {
	if !m.set {
		return AllValue
	}
	return m.value
}

// SortKey selects the order of a view.
type SortKey string

const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
	SortDomain    SortKey = "domain"
)

// DefaultSort is used when no sort key is given.
const DefaultSort = SortDateDesc

// SortKeys lists every supported key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc, SortDomain}
}

// ParseSortKey validates s. An empty string yields DefaultSort.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSort, nil
	}
	for _, k := range SortKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want one of %s)", s, joinKeys(SortKeys()))
}

func joinKeys(keys []SortKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// Criteria is the full set of constraints for one filter pass.
type Criteria struct {
	Search string
	Domain Match
	Year   Match
	Sort   SortKey
	// Skills holds normalized skill tokens; a record must carry all of them.
	Skills []string
}

// normalized returns a copy with the search query and skill tokens folded.
func (c Criteria) normalized() Criteria {
	out := c
	out.Search = Normalize(c.Search)
	if out.Sort == "" {
		out.Sort = DefaultSort
	}
	if len(c.Skills) > 0 {
		out.Skills = make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			if s = Normalize(s); s != "" {
				out.Skills = append(out.Skills, s)
			}
		}
	}
	return out
}

// Normalize folds s into a comparison token: trimmed and lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
