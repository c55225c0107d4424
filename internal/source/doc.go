// Package source reads a file sequentially in row-sized chunks.
//
// A File owns its handle exclusively. Read failures after a successful
// Open are reported as end of stream; only opening and seeking can fail.
package source
