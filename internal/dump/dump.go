package dump

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/metametaclass/hexed/internal/config"
	"github.com/metametaclass/hexed/internal/source"
)

// Stats summarizes a finished dump.
type Stats struct {
	Rows  uint64
	Bytes uint64
	// Interrupted is set when ctx was done before the source ran out.
	Interrupted bool
}

// lineWriter remembers the first write error and drops everything after it.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) write(line string) {
	if lw.err != nil || line == "" {
		return
	}
	_, lw.err = io.WriteString(lw.w, line)
}

// Run dumps src to w according to cfg. Cancelling ctx stops the dump
// before the next row; the footer is still written and no error is
// returned for it. A write error ends the dump at once and is returned.
// Chunks longer than a row are spread over as many rows as they need.
func Run(ctx context.Context, src source.Source, cfg *config.Config, w io.Writer) (Stats, error) {
	r := NewRenderer(cfg)
	out := &lineWriter{w: w}
	limit := cfg.Limit()
	width := cfg.Base.RowWidth()

	var st Stats
	var pending []byte
	out.write(r.Header())
	for out.err == nil && st.Bytes < limit {
		if ctx.Err() != nil {
			st.Interrupted = true
			break
		}
		if len(pending) == 0 {
			pending = src.Next()
			if len(pending) == 0 {
				break
			}
		}
		chunk := pending
		if len(chunk) > width {
			chunk = chunk[:width]
		}
		if rest := limit - st.Bytes; uint64(len(chunk)) > rest {
			chunk = chunk[:rest]
		}
		pending = pending[len(chunk):]
		out.write(r.Line(FormatRow(st.Rows, chunk, cfg.Base)))
		if out.err != nil {
			break
		}
		st.Rows++
		st.Bytes += uint64(len(chunk))
	}
	out.write(r.Footer(st.Bytes, cfg.Path))

	if out.err != nil {
		return st, errors.Wrap(out.err, "Run: write failed")
	}
	return st, nil
}
