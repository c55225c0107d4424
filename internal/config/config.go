package config

import (
	"math"
)

// AppName is used for the XDG config directory and the logger name.
const AppName = "hexed"

// DefaultLogLevel keeps stderr quiet during a normal dump.
const DefaultLogLevel = "warn"

// Base is the numeric base byte values are rendered in.
type Base int

const (
	// Hex renders 16 bytes per row as two uppercase hex digits.
	Hex Base = iota
	// Octal renders 8 bytes per row as four octal digits.
	Octal
)

func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	case Octal:
		return "octal"
	default:
		return "unknown"
	}
}

// Radix returns 16 or 8.
func (b Base) Radix() int {
	if b == Octal {
		return 8
	}
	return 16
}

// RowWidth returns the number of bytes shown on one row.
func (b Base) RowWidth() int {
	if b == Octal {
		return 0o10
	}
	return 0x10
}

// CellWidth returns the number of digits of one byte cell, without the
// trailing separator.
func (b Base) CellWidth() int {
	if b == Octal {
		return 4
	}
	return 2
}

// Config store the settings of one dump
type Config struct {
	// Path is the file to dump.
	Path string
	// Base selects hex or octal output, and with it the row width.
	Base Base
	// Offset is the number of bytes skipped at the start of the file.
	Offset uint64
	// Length limits the number of bytes shown. nil means the rest of the file.
	Length *uint64
	// Guides enables the offset header, rules and per-row offset labels.
	Guides bool
	// Colors enables ANSI colors.
	Colors bool
	// ASCII enables the sidebar.
	ASCII bool
	// LogLevel is a logf level name.
	LogLevel string
}

func NewConfig() *Config {
	return &Config{
		Base:     Hex,
		Guides:   true,
		Colors:   true,
		ASCII:    true,
		LogLevel: DefaultLogLevel,
	}
}

// Limit returns the maximum number of bytes to show.
func (c *Config) Limit() uint64 {
	if c.Length == nil {
		return math.MaxUint64
	}
	return *c.Length
}

// SetLength limits the dump to n bytes.
func (c *Config) SetLength(n uint64) {
	c.Length = &n
}

// Validate checks the fields that cannot be enforced by flag parsing.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}
	if c.Base != Hex && c.Base != Octal {
		return ErrInvalidBase
	}
	return nil
}
