package catalog

import "context"

// State describes where a Store is in its load lifecycle.
type State int

const (
	// StateEmpty means no load has completed yet.
	StateEmpty State = iota
	// StateReady means the last load succeeded.
	StateReady
	// StateFailed means the last load failed; the store holds an empty catalog.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Store holds the current catalog. It never exposes a nil catalog.
type Store struct {
	state   State
	catalog *Catalog
	err     error
}

// NewStore returns a store in StateEmpty.
func NewStore() *Store {
	return &Store{catalog: Empty()}
}

// Load replaces the catalog with the dataset at source. On failure the store
// falls back to an empty catalog, moves to StateFailed, and returns the error.
func (s *Store) Load(ctx context.Context, source string) error {
	c, err := Load(ctx, source)
	if err != nil {
		s.state = StateFailed
		s.catalog = Empty()
		s.err = err
		return err
	}
	s.Set(c)
	return nil
}

// Set installs an already decoded catalog.
func (s *Store) Set(c *Catalog) {
	if c == nil {
		c = Empty()
	}
	s.state = StateReady
	s.catalog = c
	s.err = nil
}

func (s *Store) State() State       { return s.state }
func (s *Store) Err() error         { return s.err }
func (s *Store) Catalog() *Catalog  { return s.catalog }
func (s *Store) Records() []*Record { return s.catalog.Records }
