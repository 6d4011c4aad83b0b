package inventory

import (
	"errors"
	"strings"
)

// Validation rules enforced by AddItem. Each can be matched with errors.Is
// against a *ValidationError.
var (
	ErrNameEmpty        = errors.New("name must not be empty")
	ErrQtyNotPositive   = errors.New("initial stock must be greater than zero")
	ErrPriceNotPositive = errors.New("price must be greater than zero")
	ErrMinNotBelowQty   = errors.New("threshold must be lower than current stock")
)

// ValidationError reports every rule a new item violated, not just the first.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	return "invalid item: " + strings.Join(e.Messages(), "; ")
}

// Unwrap exposes the individual violations to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return e.Violations
}

// Messages returns the user-facing text of each violation.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return msgs
}
