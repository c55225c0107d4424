package source

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by Open.
var (
	ErrOpenFailed = errors.New("open failed")
	ErrSeekFailed = errors.New("seek failed")
)

// Error describes a failure to open or position the file. It matches
// both its kind and the underlying cause with errors.Is.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("'%s' is not a valid path: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
