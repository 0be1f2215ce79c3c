package widgets

import (
	"errors"
	"fmt"
)

// ErrInvalidDefault is the sentinel matched by errors.Is for any
// construction failure caused by an unusable default or initial selection.
var ErrInvalidDefault = errors.New("widgets: invalid default selection")

// ErrLengthMismatch is returned when a tabulator's key and content
// sequences have different lengths.
var ErrLengthMismatch = errors.New("widgets: keys and contents must have equal length")

// InvalidDefaultError reports an initial selection that is not present in
// the option collection, or a single-select widget built over an empty
// collection. It is raised at construction time; the widget is not built.
type InvalidDefaultError struct {
	// Value is the offending initial value. Nil when the failure is an
	// empty option collection rather than an absent value.
	Value any
}

// Error implements the error interface.
func (e *InvalidDefaultError) Error() string {
	if e.Value == nil {
		return "widgets: single-select widget requires a non-empty option collection"
	}
	return fmt.Sprintf("widgets: initial value %v is not present in the options", e.Value)
}

// Unwrap supports errors.Is(err, ErrInvalidDefault).
func (e *InvalidDefaultError) Unwrap() error {
	return ErrInvalidDefault
}
