package dump

import (
	"strings"

	"github.com/metametaclass/hexed/internal/config"
)

const digitTable = "0123456789ABCDEF"

// Cell is one byte position of a row.
type Cell struct {
	// Text is the zero-padded digits plus one separator space, or only
	// spaces of the same width for a padding position.
	Text  string
	Class Class
	// Pad is set for positions past the end of a short chunk.
	Pad bool
}

// Row is one formatted line of the dump, before decoration.
type Row struct {
	Index uint64
	// Cells always holds base.RowWidth() entries.
	Cells []Cell
	// Sidebar holds one character per real byte.
	Sidebar string
}

// FormatRow formats chunk as row number index. chunk must not be longer
// than base.RowWidth().
func FormatRow(index uint64, chunk []byte, base config.Base) Row {
	width := base.RowWidth()
	cellWidth := base.CellWidth()
	padding := strings.Repeat(" ", cellWidth+1)

	row := Row{
		Index: index,
		Cells: make([]Cell, width),
	}
	for i := 0; i < width; i++ {
		if i >= len(chunk) {
			row.Cells[i] = Cell{Text: padding, Pad: true}
			continue
		}
		row.Cells[i] = Cell{
			Text:  encodeByte(chunk[i], base),
			Class: Classify(chunk[i]),
		}
	}

	sidebar := make([]byte, len(chunk))
	for i, b := range chunk {
		sidebar[i] = sidebarChar(b)
	}
	row.Sidebar = string(sidebar)
	return row
}

// encodeByte writes b as base.CellWidth() digits followed by a space.
func encodeByte(b byte, base config.Base) string {
	shift, mask := uint(4), byte(0x0f)
	if base == config.Octal {
		shift, mask = 3, 0x07
	}
	dst := make([]byte, base.CellWidth()+1)
	for i := len(dst) - 2; i >= 0; i-- {
		dst[i] = digitTable[b&mask]
		b >>= shift
	}
	dst[len(dst)-1] = ' '
	return string(dst)
}

// sidebarChar keeps ASCII graphic characters and blanks everything else,
// space included.
func sidebarChar(b byte) byte {
	if b > ' ' && b <= '~' {
		return b
	}
	return ' '
}
