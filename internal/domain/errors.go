package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// OutOfRangeError names the profile field that violated its closed domain.
type OutOfRangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.Field, e.Value, e.Min, e.Max)
}
