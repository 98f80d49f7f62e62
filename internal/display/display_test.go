package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/certview/internal/catalog"
	"github.com/kamusis/certview/internal/filter"
	"github.com/kamusis/certview/internal/locale"
)

func TestHumanizeDomain(t *testing.T) {
	assert.Equal(t, "Cloud Infrastructure", HumanizeDomain("cloud_infrastructure"))
	assert.Equal(t, "Ai", HumanizeDomain("ai"))
	assert.Equal(t, "E-commerce", HumanizeDomain("e-commerce"))
	assert.Equal(t, "", HumanizeDomain(""))
	assert.Equal(t, "Élan Vital", HumanizeDomain("élan_vital"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05-03-2024", FormatDate("2024-03-05"))
	assert.Equal(t, "30-02-2024", FormatDate("2024-02-30"), "invalid calendar date falls back to token reorder")
	assert.Equal(t, "bad-input", FormatDate("bad-input"), "two tokens cannot be reordered")
	assert.Equal(t, "c-b-a", FormatDate("a-b-c"))
	assert.Equal(t, "March 2024", FormatDate("March 2024"))
	assert.Equal(t, "", FormatDate(""))
}

func TestRecordDate(t *testing.T) {
	assert.Equal(t, "05-03-2024", RecordDate(&catalog.Record{Date: "2024-03-05", Year: "2023"}))
	assert.Equal(t, "2023", RecordDate(&catalog.Record{Year: "2023"}))
	assert.Equal(t, "", RecordDate(&catalog.Record{}))
}

func TestActiveFilters_OneChipPerSkill(t *testing.T) {
	c := filter.Criteria{
		Domain: filter.Exactly("cloud_infrastructure"),
		Year:   filter.Exactly("2024"),
		Search: "  Kubernetes ",
		Skills: []string{"go", "docker"},
	}
	chips := ActiveFilters(c, locale.For(locale.English))
	require.Len(t, chips, 5)
	assert.Equal(t, "Domain: Cloud Infrastructure", chips[0].Label)
	assert.Equal(t, "Year: 2024", chips[1].Label)
	assert.Equal(t, Chip{Kind: ChipSearch, Value: "kubernetes", Label: "Search: kubernetes"}, chips[2])
	assert.Equal(t, Chip{Kind: ChipSkill, Value: "go", Label: "Skills: go"}, chips[3])
	assert.Equal(t, Chip{Kind: ChipSkill, Value: "docker", Label: "Skills: docker"}, chips[4])

	assert.Empty(t, ActiveFilters(filter.Criteria{}, locale.For(locale.English)))
}

func TestActiveFilters_French(t *testing.T) {
	chips := ActiveFilters(filter.Criteria{Year: filter.Exactly("2025")}, locale.For(locale.French))
	require.Len(t, chips, 1)
	assert.Equal(t, "Année: 2025", chips[0].Label)
}

func TestResultsCount(t *testing.T) {
	en := locale.For(locale.English)
	assert.Equal(t, "Showing 3 of 10 certificates", ResultsCount(3, 10, en))
	assert.Equal(t, "Showing 10 certificates", ResultsCount(10, 10, en))
	assert.NotContains(t, ResultsCount(10, 10, en), "of")
}

func TestCardSkills(t *testing.T) {
	r := &catalog.Record{Domain: "cloud_computing", Skills: []string{"Cloud Computing", "AWS", "aws ", "cloud_computing", "Terraform"}}
	assert.Equal(t, []string{"AWS", "Terraform"}, CardSkills(r))
}
