package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Configuration errors. Callers match them with errors.Is.
var (
	// ErrInvalidLength is returned when --length cannot be parsed.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidOffset is returned when --skip cannot be parsed.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrNoPath is returned when no file to dump was given.
	ErrNoPath = errors.New("no file specified")

	// ErrInvalidBase is returned for a Base other than Hex or Octal.
	ErrInvalidBase = errors.New("invalid numeric base")

	// ErrConfigNotFound is returned when the defaults file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// ArgumentError reports a command line value that could not be parsed.
type ArgumentError struct {
	// Name is the argument as shown to the user, e.g. "length".
	Name string
	// Value is the text the user typed.
	Value string
	// Err is one of ErrInvalidLength or ErrInvalidOffset.
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s", e.Value, e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
