package statview

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statview/schema"
)

var (
	// ErrNilStatistics is returned when a view is constructed from nil
	// statistics.
	ErrNilStatistics = errors.New("statview: nil dataset statistics")

	// ErrDuplicatePath is returned (wrapped) when construction runs in
	// strict mode and two records map to the same path.
	ErrDuplicatePath = errors.New("statview: duplicate feature path")
)

// DuplicatePathError reports a path collision between two record
// positions. It unwraps to ErrDuplicatePath.
type DuplicatePathError struct {
	Path          schema.Path
	First, Second int
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("statview: duplicate feature path %q at positions %d and %d", e.Path, e.First, e.Second)
}

func (e *DuplicatePathError) Unwrap() error { return ErrDuplicatePath }
