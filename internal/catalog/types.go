package catalog

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Record is one certificate entry in the catalog.
//
// Records are created once at load time and never mutated afterwards; views
// hold pointers into the catalog's record slice.
type Record struct {
	ID       int      `json:"id,omitempty"`
	Title    string   `json:"title"`
	Domain   string   `json:"domain"`
	Year     string   `json:"year"`
	Date     string   `json:"date,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Path     string   `json:"path"`
	Folder   string   `json:"folder,omitempty"`
	Level    string   `json:"level,omitempty"`
	Provider string   `json:"provider,omitempty"`
}

// Metadata is the advisory block shipped with a dataset. Nil fields were
// absent from the document.
type Metadata struct {
	Total       *int     `json:"total,omitempty"`
	Domains     *int     `json:"domains,omitempty"`
	Years       []string `json:"years,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty"`
}

// Document is the on-disk dataset layout.
type Document struct {
	Metadata     Metadata `json:"metadata"`
	Certificates []Record `json:"certificates"`
}

// Catalog is a loaded dataset.
type Catalog struct {
	Records  []*Record
	Metadata Metadata
}

// Empty returns a catalog with no records.
func Empty() *Catalog {
	return &Catalog{Records: []*Record{}}
}

// FromDocument builds a catalog whose records point into doc.Certificates.
func FromDocument(doc *Document) *Catalog {
	c := &Catalog{Metadata: doc.Metadata, Records: make([]*Record, 0, len(doc.Certificates))}
	for i := range doc.Certificates {
		c.Records = append(c.Records, &doc.Certificates[i])
	}
	return c
}

// Total returns the advertised record count, falling back to the live count.
func (c *Catalog) Total() int {
	if c.Metadata.Total != nil && *c.Metadata.Total > 0 {
		return *c.Metadata.Total
	}
	return len(c.Records)
}

// DomainCount returns the advertised domain count, falling back to the number
// of distinct domains across the records.
func (c *Catalog) DomainCount() int {
	if c.Metadata.Domains != nil && *c.Metadata.Domains > 0 {
		return *c.Metadata.Domains
	}
	return len(c.Domains())
}

// YearCount returns the number of active years.
func (c *Catalog) YearCount() int {
	if len(c.Metadata.Years) > 0 {
		return len(c.Metadata.Years)
	}
	return len(c.distinctYears())
}

// Domains returns the distinct domain keys of the records, sorted.
func (c *Catalog) Domains() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range c.Records {
		if _, ok := seen[r.Domain]; ok {
			continue
		}
		seen[r.Domain] = struct{}{}
		out = append(out, r.Domain)
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct year tokens of the records, newest first.
func (c *Catalog) Years() []string {
	out := c.distinctYears()
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

func (c *Catalog) distinctYears() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range c.Records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		out = append(out, r.Year)
	}
	return out
}

// UnmarshalJSON decodes a record permissively: fields of the wrong type fall
// back to their zero value instead of failing the whole document.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       flexString      `json:"id"`
		Title    flexString      `json:"title"`
		Domain   flexString      `json:"domain"`
		Year     flexString      `json:"year"`
		Date     flexString      `json:"date"`
		Skills   json.RawMessage `json:"skills"`
		Duration flexString      `json:"duration"`
		Path     flexString      `json:"path"`
		Folder   flexString      `json:"folder"`
		Level    flexString      `json:"level"`
		Provider flexString      `json:"provider"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*r = Record{}
		return nil
	}
	id, _ := strconv.Atoi(string(raw.ID))
	*r = Record{
		ID:       id,
		Title:    string(raw.Title),
		Domain:   string(raw.Domain),
		Year:     string(raw.Year),
		Date:     string(raw.Date),
		Skills:   decodeSkills(raw.Skills),
		Duration: string(raw.Duration),
		Path:     string(raw.Path),
		Folder:   string(raw.Folder),
		Level:    string(raw.Level),
		Provider: string(raw.Provider),
	}
	return nil
}

// UnmarshalJSON decodes metadata permissively.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw struct {
		Total       flexString      `json:"total"`
		Domains     flexString      `json:"domains"`
		Years       json.RawMessage `json:"years"`
		LastUpdated flexString      `json:"last_updated"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*m = Metadata{}
		return nil
	}
	*m = Metadata{
		Total:       atoiPtr(string(raw.Total)),
		Domains:     atoiPtr(string(raw.Domains)),
		Years:       decodeSkills(raw.Years),
		LastUpdated: string(raw.LastUpdated),
	}
	return nil
}

func atoiPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// decodeSkills keeps the string entries of a JSON array and drops the rest.
func decodeSkills(b json.RawMessage) []string {
	if len(b) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// flexString accepts JSON strings and numbers; anything else decodes as "".
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}
