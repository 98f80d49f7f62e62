package filter

// Selection is the set of skill tokens the user has selected. Tokens are
// normalized on the way in and kept in insertion order.
//
// The zero value is an empty selection ready to use.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection returns a selection holding the given skills.
func NewSelection(skills ...string) *Selection {
	s := &Selection{}
	for _, sk := range skills {
		s.Add(sk)
	}
	return s
}

// Toggle adds skill if absent and removes it if present. It reports whether
// the skill is selected afterwards. Blank input is ignored.
func (s *Selection) Toggle(skill string) bool {
	tok := Normalize(skill)
	if tok == "" {
		return false
	}
	if s.Contains(tok) {
		s.Remove(tok)
		return false
	}
	s.Add(tok)
	return true
}

// Add selects skill. It is a no-op when the skill is already selected.
func (s *Selection) Add(skill string) {
	tok := Normalize(skill)
	if tok == "" || s.Contains(tok) {
		return
	}
	if s.set == nil {
		s.set = map[string]struct{}{}
	}
	s.set[tok] = struct{}{}
	s.order = append(s.order, tok)
}

// Remove deselects skill.
func (s *Selection) Remove(skill string) {
	tok := Normalize(skill)
	if !s.Contains(tok) {
		return
	}
	delete(s.set, tok)
	for i, v := range s.order {
		if v == tok {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.order = nil
	s.set = nil
}

// Contains reports whether skill is selected.
func (s *Selection) Contains(skill string) bool {
	_, ok := s.set[Normalize(skill)]
	return ok
}

// Len returns the number of selected skills.
func (s *Selection) Len() int { return len(s.order) }

// Values returns a copy of the selected tokens in insertion order.
func (s *Selection) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
