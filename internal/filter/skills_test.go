package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamusis/certview/internal/catalog"
)

func TestSkillCounts_OrderAndNormalization(t *testing.T) {
	all := []*catalog.Record{
		{Skills: []string{"Go", "Rust"}},
		{Skills: []string{" go", "Docker", ""}},
		{Skills: []string{"docker", "GO"}},
		{},
	}
	got := SkillCounts(all)
	assert.Equal(t, []SkillCount{
		{Skill: "go", Count: 3},
		{Skill: "docker", Count: 2},
		{Skill: "rust", Count: 1},
	}, got)
	assert.Equal(t, got, SkillCounts(all), "repeated calls must agree")
}

func TestSkillCounts_TiesKeepFirstSeenOrder(t *testing.T) {
	all := []*catalog.Record{
		{Skills: []string{"b", "a"}},
		{Skills: []string{"c"}},
	}
	assert.Equal(t, []SkillCount{{"b", 1}, {"a", 1}, {"c", 1}}, SkillCounts(all))
}

func TestSelection_ToggleClear(t *testing.T) {
	var s Selection
	assert.True(t, s.Toggle(" Go "))
	assert.True(t, s.Contains("go"))
	assert.True(t, s.Contains("GO"))
	assert.True(t, s.Toggle("rust"))
	assert.Equal(t, []string{"go", "rust"}, s.Values())

	assert.False(t, s.Toggle("GO"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"rust"}, s.Values())

	assert.False(t, s.Toggle("   "))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}

func TestSelection_ValuesIsACopy(t *testing.T) {
	s := NewSelection("a", "b")
	v := s.Values()
	v[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Values())
}
