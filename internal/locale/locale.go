// Package locale supplies the UI strings for the two supported languages.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale selects one of the two fixed UI languages.
type Locale int

const (
	// English is the default locale.
	English Locale = iota
	// French is the secondary locale.
	French
)

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)
)

// Resolve maps a language attribute such as "fr", "fr-CA" or "en_US" to a
// Locale. Anything that is not recognizably French resolves to English.
func Resolve(attr string) Locale {
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return English
	}
	tag, err := language.Parse(attr)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return English
	}
	return Locale(idx)
}

// Tag returns the BCP 47 tag of l.
func (l Locale) Tag() language.Tag {
	if l == French {
		return language.French
	}
	return language.English
}

func (l Locale) String() string { return l.Tag().String() }

// Toggle returns the other locale.
func (l Locale) Toggle() Locale {
	if l == French {
		return English
	}
	return French
}

// Labels holds every user-visible string the viewer needs.
type Labels struct {
	GridView        string
	ListView        string
	ChipDomain      string
	ChipYear        string
	ChipSearch      string
	ChipSkills      string
	RemoveFilter    string
	NoResults       string
	LoadFailed      string
	CountAll        string // one %d: total
	CountPartial    string // two %d: shown, total
	ViewCertificate string
	Certificates    string
	Domains         string
	ActiveYears     string
	Skills          string
	SearchHint      string
	AllDomains      string
	AllYears        string
	Sort            string
}

var english = Labels{
	GridView:        "Grid",
	ListView:        "List",
	ChipDomain:      "Domain: ",
	ChipYear:        "Year: ",
	ChipSearch:      "Search: ",
	ChipSkills:      "Skills: ",
	RemoveFilter:    "Remove filter",
	NoResults:       "No certificates found matching your filters.",
	LoadFailed:      "Unable to load certificates. Please check the data file.",
	CountAll:        "Showing %d certificates",
	CountPartial:    "Showing %d of %d certificates",
	ViewCertificate: "View Certificate",
	Certificates:    "Certificates",
	Domains:         "Domains",
	ActiveYears:     "Active years",
	Skills:          "Skills",
	SearchHint:      "Search certificates...",
	AllDomains:      "All domains",
	AllYears:        "All years",
	Sort:            "Sort",
}

var french = Labels{
	GridView:        "Grille",
	ListView:        "Liste",
	ChipDomain:      "Domaine: ",
	ChipYear:        "Année: ",
	ChipSearch:      "Recherche: ",
	ChipSkills:      "Compétences: ",
	RemoveFilter:    "Retirer le filtre",
	NoResults:       "Aucun certificat trouvé correspondant à vos filtres.",
	LoadFailed:      "Impossible de charger les certificats. Veuillez vérifier le fichier de données.",
	CountAll:        "Affichage de %d certificats",
	CountPartial:    "Affichage de %d sur %d certificats",
	ViewCertificate: "Voir le Certificat",
	Certificates:    "Certificats",
	Domains:         "Domaines",
	ActiveYears:     "Années actives",
	Skills:          "Compétences",
	SearchHint:      "Rechercher des certificats...",
	AllDomains:      "Tous les domaines",
	AllYears:        "Toutes les années",
	Sort:            "Tri",
}

// For returns the labels of l.
func For(l Locale) Labels {
	if l == French {
		return french
	}
	return english
}
