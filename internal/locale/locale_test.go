package locale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]Locale{
		"":      English,
		"en":    English,
		"en-US": English,
		"fr":    French,
		"fr-CA": French,
		"FR":    French,
		"de":    English,
		"!!":    English,
	}
	for in, want := range cases {
		assert.Equal(t, want, Resolve(in), "Resolve(%q)", in)
	}
}

func TestFor_CountPhrasing(t *testing.T) {
	assert.Equal(t, "Showing 3 of 10 certificates", fmt.Sprintf(For(English).CountPartial, 3, 10))
	assert.Equal(t, "Affichage de 10 certificats", fmt.Sprintf(For(French).CountAll, 10))
	assert.Equal(t, "Domaine: ", For(French).ChipDomain)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, French, English.Toggle())
	assert.Equal(t, English, French.Toggle())
	assert.Equal(t, "fr", French.String())
}
