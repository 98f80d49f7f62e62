package filter

import (
	"sort"

	"github.com/kamusis/certview/internal/catalog"
)

// SkillCount is one entry of the skill catalog.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillCounts aggregates every normalized skill token across all records and
// returns them by occurrence count, descending. Equal counts keep the order in
// which the tokens were first seen.
func SkillCounts(all []*catalog.Record) []SkillCount {
	index := map[string]int{}
	var out []SkillCount
	for _, r := range all {
		for _, s := range r.Skills {
			tok := Normalize(s)
			if tok == "" {
				continue
			}
			if i, ok := index[tok]; ok {
				out[i].Count++
				continue
			}
			index[tok] = len(out)
			out = append(out, SkillCount{Skill: tok, Count: 1})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
