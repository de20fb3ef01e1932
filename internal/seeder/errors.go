package seeder

import (
	"errors"
	"fmt"
)

var (
	ErrMissingReference    = errors.New("missing reference")
	ErrInsufficientModules = errors.New("insufficient modules")
	ErrNamespaceExhausted  = errors.New("code namespace exhausted")
	ErrStageOrder          = errors.New("invalid stage order")
)

// MissingReferenceError reports a name that the catalog refers to but that
// has no row in the referenced table. An empty Key means the table had no
// rows at all to choose from.
type MissingReferenceError struct {
	Table string
	Key   string
}

func (e *MissingReferenceError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("missing reference: %s has no rows", e.Table)
	}
	return fmt.Sprintf("missing reference: no %s row named %q", e.Table, e.Key)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}
