// Package config holds the resolved settings of a single dump.
//
// A Config is built from defaults (NewConfig), an optional YAML defaults
// file (LoadFile, FindFile) and the command line. Once Validate has
// succeeded the Config is treated as immutable and shared by the byte
// source, the renderer and the dump loop.
//
// Numeric arguments are parsed with ParseSize, which accepts plain
// decimal numbers, 0x/0o/0b prefixed numbers and humanized sizes such
// as "4KiB" or "1MB".
package config
