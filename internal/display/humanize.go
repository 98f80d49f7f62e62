// Package display holds the presentation helpers shared by every render sink.
package display

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/filter"
)

// HumanizeDomain turns a domain key such as "cloud_infrastructure" into
// "Cloud Infrastructure". Only the first character of each token changes.
func HumanizeDomain(domain string) string {
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, "_")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// CardSkills returns the skills worth showing on a card: entries equal to the
// record's domain (raw or humanized) and repeated entries are dropped.
func CardSkills(r *catalog.Record) []string {
	domain := filter.Normalize(r.Domain)
	human := filter.Normalize(HumanizeDomain(r.Domain))
	seen := map[string]struct{}{}
	out := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		tok := filter.Normalize(s)
		if tok == "" || tok == domain || tok == human {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
