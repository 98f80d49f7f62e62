package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kamusis/certview/internal/catalog"
)

// SortRecords orders recs in place by key using a stable sort.
//
// Years are opaque tokens compared byte-wise; titles and domains use a
// language-neutral collation so that case does not split the alphabet.
func SortRecords(recs []*catalog.Record, key SortKey) {
	col := collate.New(language.Und)
	text := func(a, b string) int { return col.CompareString(a, b) }

	var less func(a, b *catalog.Record) bool
	switch key {
	case SortDateAsc:
		less = func(a, b *catalog.Record) bool {
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return text(a.Title, b.Title) < 0
		}
	case SortTitleAsc:
		less = func(a, b *catalog.Record) bool { return text(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b *catalog.Record) bool { return text(a.Title, b.Title) > 0 }
	case SortDomain:
		less = func(a, b *catalog.Record) bool {
			if c := text(a.Domain, b.Domain); c != 0 {
				return c < 0
			}
			return text(a.Title, b.Title) < 0
		}
	default:
		less = func(a, b *catalog.Record) bool {
			if c := strings.Compare(a.Year, b.Year); c != 0 {
				return c > 0
			}
			return text(a.Title, b.Title) > 0
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return less(recs[i], recs[j]) })
}
