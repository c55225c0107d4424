// Package main provides the hexed command.
//
// hexed prints a file as a table of hexadecimal or octal byte values with
// row offsets and an ASCII sidebar, colored by byte class.
//
// Usage:
//
//	hexed [-n LENGTH] [-s OFFSET] [-o] [-G] [-C] [-A] FILE
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/metametaclass/hexed/internal/config"
)

func main() {
	err := NewRootCommand().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}
