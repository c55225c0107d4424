package dump

import (
	"fmt"
	"strings"

	"github.com/metametaclass/hexed/internal/config"
)

const (
	offsetBanner = "  Offset "
	guideBar     = "│ "
	ruleChar     = "─"
	ruleOpen     = "┼"
	ruleClose    = "┴"
)

// Renderer turns rows into output lines. Every returned string ends with
// a newline, or is empty.
type Renderer struct {
	base   config.Base
	guides bool
	ascii  bool
	paint  Colorizer
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		base:   cfg.Base,
		guides: cfg.Guides,
		ascii:  cfg.ASCII,
		paint:  NewColorizer(cfg.Colors),
	}
}

// Header returns the column index line and the opening rule.
func (r *Renderer) Header() string {
	if !r.guides {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(offsetBanner)
	sb.WriteString(guideBar)
	for i := 0; i < r.base.RowWidth(); i++ {
		sb.WriteString(encodeByte(byte(i), r.base))
	}
	return r.paint(sb.String(), StyleGuide) + "\n" + r.paint(r.rule(ruleOpen), StyleGuide) + "\n"
}

// Line returns the output line for row.
func (r *Renderer) Line(row Row) string {
	var sb strings.Builder
	if r.guides {
		sb.WriteString(r.paint(r.offsetLabel(row.Index), StyleGuide))
	}
	for _, cell := range row.Cells {
		if cell.Pad {
			sb.WriteString(cell.Text)
			continue
		}
		sb.WriteString(r.paint(cell.Text, cell.Class.Style()))
	}
	if r.ascii {
		sb.WriteString(" ")
		sb.WriteString(r.paint(row.Sidebar, StyleSidebar))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Footer returns the closing rule and the summary line.
func (r *Renderer) Footer(total uint64, path string) string {
	var sb strings.Builder
	if r.guides {
		sb.WriteString(r.paint(r.rule(ruleClose), StyleGuide))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%d bytes in `%s`\n", total, path)
	return sb.String()
}

func (r *Renderer) offsetLabel(index uint64) string {
	offset := index * uint64(r.base.RowWidth())
	if r.base == config.Octal {
		return fmt.Sprintf("%08o %s", offset, guideBar)
	}
	return fmt.Sprintf("%08X %s", offset, guideBar)
}

func (r *Renderer) rule(junction string) string {
	width := r.base.RowWidth() * (r.base.CellWidth() + 1)
	return strings.Repeat(ruleChar, len(offsetBanner)) + junction + strings.Repeat(ruleChar, width)
}
