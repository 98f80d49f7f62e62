package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/kamusis/certview/internal/display"
)

var funcs = template.FuncMap{
	"date":       display.RecordDate,
	"domainName": display.HumanizeDomain,
	"cardSkills": display.CardSkills,
}

var pageTmpl = template.Must(template.New("view").Funcs(funcs).Parse(`<section class="learning" lang="{{.Locale}}">
<div class="view-toggle"><button type="button" class="{{if eq .Layout "grid"}}active{{end}}" data-view="grid">{{.Labels.GridView}}</button><button type="button" class="{{if ne .Layout "grid"}}active{{end}}" data-view="list">{{.Labels.ListView}}</button></div>
<div class="active-filters">{{range .Chips}}<div class="filter-tag" data-kind="{{.Kind}}" data-value="{{.Value}}"><span>{{.Label}}</span><button type="button" aria-label="{{$.Labels.RemoveFilter}}">×</button></div>{{end}}</div>
<div class="results-count">{{.Count}}</div>
<div class="certificates-grid{{if ne .Layout "grid"}} list-view{{end}}">
{{- if .Empty}}<div class="no-results">{{.Message}}</div>{{else}}{{range .Records}}
<div class="certificate-card-learning" data-domain="{{.Domain}}" data-year="{{.Year}}">
<div class="certificate-header-learning"><h3 class="certificate-title-learning">{{.Title}}</h3></div>
<div class="certificate-meta-learning">{{with date .}}<span>{{.}}</span>{{end}}{{with .Duration}}<span>{{.}}</span>{{end}}</div>
<div class="certificate-skills-learning">{{range cardSkills .}}<span class="skill-badge-learning">{{.}}</span>{{end}}</div>
<div class="certificate-actions"><a href="{{.Path}}" target="_blank" rel="noopener noreferrer" class="certificate-link-learning">{{$.Labels.ViewCertificate}}</a></div>
</div>{{end}}{{end}}
</div>
</section>
`))

// HTML renders frames as an HTML fragment. The template output is passed
// through a bluemonday policy that only admits the markup the viewer emits.
type HTML struct {
	policy *bluemonday.Policy
}

// NewHTML returns an HTML sink with the viewer's sanitizing policy.
func NewHTML() *HTML {
	return &HTML{policy: Policy()}
}

// Policy is the allow-list applied to rendered fragments.
func Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("section", "div", "span", "h3", "button")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("lang").OnElements("section")
	p.AllowAttrs("type", "aria-label").OnElements("button")
	p.AllowDataAttributes()
	p.AllowStandardURLs()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	return p
}

func (h *HTML) Render(w io.Writer, f Frame) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, f); err != nil {
		return err
	}
	_, err := w.Write(h.policy.SanitizeBytes(buf.Bytes()))
	return err
}
