package config

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// ParseSize parses a byte count. Plain and prefixed integers ("4096",
// "0x1000", "0o10000") are tried first, then humanized sizes ("4KiB",
// "4 kB").
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty size")
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return n, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, errors.Errorf("negative size %q", s)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "ParseBytes failed for %q", s)
	}
	return n, nil
}

// ParseLength parses the --length argument.
func ParseLength(s string) (uint64, error) {
	n, err := ParseSize(s)
	if err != nil {
		return 0, &ArgumentError{Name: "length", Value: s, Err: ErrInvalidLength}
	}
	return n, nil
}

// ParseOffset parses the --skip argument.
func ParseOffset(s string) (uint64, error) {
	n, err := ParseSize(s)
	if err != nil {
		return 0, &ArgumentError{Name: "offset", Value: s, Err: ErrInvalidOffset}
	}
	return n, nil
}
