// Package archive builds a certificate dataset from a directory of
// certificate PDFs.
package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kamusis/certview/internal/catalog"
)

const (
	certPrefix  = "CertificateOfCompletion"
	otherDomain = "other"
	maxSkills   = 5
)

// Options controls Scan. Zero fields take the defaults.
type Options struct {
	Rules        []Rule
	TechKeywords []string
	Provider     string
	DefaultYear  string
}

func (o Options) withDefaults() Options {
	if len(o.Rules) == 0 {
		o.Rules = DefaultRules()
	}
	if len(o.TechKeywords) == 0 {
		o.TechKeywords = DefaultTechKeywords()
	}
	if o.Provider == "" {
		o.Provider = "LinkedIn Learning"
	}
	if o.DefaultYear == "" {
		o.DefaultYear = "2024"
	}
	return o
}

var (
	durationRe  = regexp.MustCompile(`(?i)\[.*?-.*?(\d+h?\s*\d*m?)\s*\]`)
	yearRunRe   = regexp.MustCompile(`\d{4}`)
	trailNumRe  = regexp.MustCompile(`\s*-\s*\d+$`)
	trailYearRe = regexp.MustCompile(`\s*\d{4}$`)
	levels      = []string{"beginner", "intermediate", "advanced", "general"}
	titleCaser  = cases.Title(language.English)
)

// Scan walks root for CertificateOfCompletion*.pdf files and returns one
// record per file, newest year first.
func Scan(root string, opts Options) ([]catalog.Record, error) {
	opts = opts.withDefaults()
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot stat archive directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("archive path is not a directory: %s", root)
	}
	base := filepath.Dir(filepath.Clean(root))

	var out []catalog.Record
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasPrefix(name, certPrefix) || !strings.EqualFold(filepath.Ext(name), ".pdf") {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		folder := filepath.Base(filepath.Dir(path))
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		title := CleanTitle(strings.TrimPrefix(stem, certPrefix+"_"))
		domain := CategorizeDomain(title+" "+folder, opts.Rules)

		out = append(out, catalog.Record{
			ID:       len(out) + 1,
			Title:    title,
			Folder:   folder,
			Path:     rel,
			Domain:   domain,
			Year:     YearFromPath(rel, opts.DefaultYear),
			Level:    LevelFromFolder(folder),
			Duration: DurationFromFolder(folder),
			Skills:   skillsFor(domain, title+" "+folder, opts.TechKeywords),
			Provider: opts.Provider,
		})
		return nil
	}
	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan archive: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Title > out[j].Title
	})
	return out, nil
}

// BuildDocument wraps records in a dataset document with fresh metadata.
func BuildDocument(recs []catalog.Record, now time.Time) *catalog.Document {
	domains := map[string]struct{}{}
	yearSet := map[string]struct{}{}
	for _, r := range recs {
		domains[r.Domain] = struct{}{}
		yearSet[r.Year] = struct{}{}
	}
	years := make([]string, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	total := len(recs)
	nDomains := len(domains)
	if recs == nil {
		recs = []catalog.Record{}
	}
	return &catalog.Document{
		Metadata: catalog.Metadata{
			Total:       &total,
			Domains:     &nDomains,
			Years:       years,
			LastUpdated: now.Format("2006-01-02T15:04:05"),
		},
		Certificates: recs,
	}
}

// CategorizeDomain returns the domain of the first rule with a keyword
// contained in text, or "other".
func CategorizeDomain(text string, rules []Rule) string {
	text = strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				return r.Domain
			}
		}
	}
	return otherDomain
}

// YearFromPath finds a plausible certificate year in a slash-separated path.
func YearFromPath(path, fallback string) string {
	for _, part := range strings.Split(path, "/") {
		if len(part) == 4 && plausibleYear(part) {
			return part
		}
	}
	if m := yearRunRe.FindString(path); m != "" && plausibleYear(m) {
		return m
	}
	return fallback
}

func plausibleYear(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil || strings.ContainsAny(s, "+-") {
		return false
	}
	return n >= 2020 && n <= 2030
}

// DurationFromFolder extracts "4h 22m" from folder names like
// "Course [Beginner-4h 22m]".
func DurationFromFolder(folder string) string {
	m := durationRe.FindStringSubmatch(folder)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// LevelFromFolder returns the course level mentioned in folder, or "General".
func LevelFromFolder(folder string) string {
	lower := strings.ToLower(folder)
	for _, l := range levels {
		if strings.Contains(lower, l) {
			return titleCaser.String(l)
		}
	}
	return "General"
}

// CleanTitle strips numbering and trailing years from a certificate name.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, certPrefix+"_", "")
	title = trailNumRe.ReplaceAllString(title, "")
	title = trailYearRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

func skillsFor(domain, text string, tech []string) []string {
	text = strings.ToLower(text)
	var skills []string
	seen := map[string]struct{}{}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	if domain != otherDomain {
		add(titleCaser.String(strings.ReplaceAll(domain, "_", " ")))
	}
	for _, kw := range tech {
		if strings.Contains(text, kw) {
			add(titleCaser.String(kw))
		}
	}
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}
