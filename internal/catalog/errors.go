package catalog

import (
	"errors"
	"fmt"
)

// ErrLoadFailed indicates the dataset could not be fetched or decoded.
var ErrLoadFailed = errors.New("certificate data could not be loaded")

// LoadError records which source failed to load and why.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailed, e.Err}
}
