package dump

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ssgreg/logf"
	check "gopkg.in/check.v1"

	"github.com/metametaclass/hexed/internal/config"
	"github.com/metametaclass/hexed/internal/source"
)

type DumpSuite struct{}

var _ = check.Suite(&DumpSuite{})

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

// memSource serves data in chunks of width bytes. hook, when set, runs
// after every call to Next with the 1-based call number.
type memSource struct {
	data  []byte
	width int
	pos   int
	calls int
	hook  func(call int)
}

func (m *memSource) Next() []byte {
	m.calls++
	if m.hook != nil {
		defer m.hook(m.calls)
	}
	if m.pos >= len(m.data) {
		return nil
	}
	end := min(m.pos+m.width, len(m.data))
	chunk := m.data[m.pos:end]
	m.pos = end
	return chunk
}

func (m *memSource) Close() error { return nil }

func newMem(data []byte, base config.Base) *memSource {
	return &memSource{data: data, width: base.RowWidth()}
}

func plainConfig(path string) *config.Config {
	cfg := config.NewConfig()
	cfg.Path = path
	cfg.Colors = false
	return cfg
}

func run(c *check.C, data []byte, cfg *config.Config) (string, Stats) {
	var out bytes.Buffer
	st, err := Run(context.Background(), newMem(data, cfg.Base), cfg, &out)
	c.Assert(err, check.IsNil)
	return out.String(), st
}

func hexRule(junction string) string {
	return strings.Repeat("─", 9) + junction + strings.Repeat("─", 48)
}

func (s *DumpSuite) TestScenarioSingleRow(c *check.C) {
	out, st := run(c, []byte{0x00, 0x41, 0x1B, 0xFF}, plainConfig("sample.bin"))

	want := "  Offset │ 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F \n" +
		hexRule("┼") + "\n" +
		"00000000 │ 00 41 1B FF " + strings.Repeat("   ", 12) + "  A  \n" +
		hexRule("┴") + "\n" +
		"4 bytes in `sample.bin`\n"
	c.Check(out, check.Equals, want)
	c.Check(st, check.DeepEquals, Stats{Rows: 1, Bytes: 4})
}

func (s *DumpSuite) TestLengthLimit(c *check.C) {
	cfg := plainConfig("sample.bin")
	cfg.SetLength(2)
	out, st := run(c, []byte{0x00, 0x41, 0x1B, 0xFF}, cfg)

	c.Check(st.Bytes, check.Equals, uint64(2))
	c.Check(strings.Contains(out, "00000000 │ 00 41 "+strings.Repeat("   ", 14)+"  A\n"), check.Equals, true)
	c.Check(strings.HasSuffix(out, "2 bytes in `sample.bin`\n"), check.Equals, true)
}

func (s *DumpSuite) TestZeroLength(c *check.C) {
	cfg := plainConfig("sample.bin")
	cfg.SetLength(0)
	src := newMem([]byte("abcdef"), cfg.Base)
	var out bytes.Buffer
	st, err := Run(context.Background(), src, cfg, &out)
	c.Assert(err, check.IsNil)

	c.Check(st.Rows, check.Equals, uint64(0))
	c.Check(src.calls, check.Equals, 0)
	c.Check(out.String(), check.Equals, s.emptyDump("sample.bin"))
}

func (s *DumpSuite) emptyDump(path string) string {
	return "  Offset │ 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F \n" +
		hexRule("┼") + "\n" +
		hexRule("┴") + "\n" +
		"0 bytes in `" + path + "`\n"
}

func (s *DumpSuite) TestOffsetPastEndOfFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "small.bin")
	c.Assert(os.WriteFile(path, []byte{1, 2, 3}, 0600), check.IsNil)

	cfg := plainConfig(path)
	cfg.Offset = 100
	src, err := source.Open(logf.NewDisabledLogger(), path, cfg.Offset, cfg.Base.RowWidth())
	c.Assert(err, check.IsNil)
	defer src.Close()

	var out bytes.Buffer
	st, err := Run(context.Background(), src, cfg, &out)
	c.Assert(err, check.IsNil)
	c.Check(st.Rows, check.Equals, uint64(0))
	c.Check(out.String(), check.Equals, s.emptyDump(path))
}

func (s *DumpSuite) TestRowCount(c *check.C) {
	data := bytes.Repeat(allBytes(), 3)
	for _, base := range []config.Base{config.Hex, config.Octal} {
		width := uint64(base.RowWidth())
		for _, size := range []int{0, 1, 7, 8, 15, 16, 17, 100, len(data)} {
			for _, length := range []int{-1, 0, 5, 16, 33, 1000} {
				cfg := plainConfig("x")
				cfg.Base = base
				want := uint64(size)
				if length >= 0 {
					cfg.SetLength(uint64(length))
					want = min(want, uint64(length))
				}
				_, st := run(c, data[:size], cfg)
				c.Check(st.Bytes, check.Equals, want)
				c.Check(st.Rows, check.Equals, (want+width-1)/width,
					check.Commentf("base %s size %d length %d", base, size, length))
			}
		}
	}
}

func (s *DumpSuite) TestOffsetLabels(c *check.C) {
	cfg := plainConfig("x")
	cfg.Base = config.Octal
	cfg.ASCII = false
	out, st := run(c, allBytes()[:20], cfg)

	c.Check(st.Rows, check.Equals, uint64(3))
	lines := strings.Split(out, "\n")
	c.Check(strings.HasPrefix(lines[0], "  Offset │ 0000 0001 0002 0003 0004 0005 0006 0007 "), check.Equals, true)
	c.Check(lines[1], check.Equals, strings.Repeat("─", 9)+"┼"+strings.Repeat("─", 40))
	c.Check(strings.HasPrefix(lines[2], "00000000 │ 0000 "), check.Equals, true)
	c.Check(strings.HasPrefix(lines[3], "00000010 │ 0010 "), check.Equals, true)
	// the short last row keeps the full-row offset and its padding
	c.Check(lines[4], check.Equals, "00000020 │ 0020 0021 0022 0023 "+strings.Repeat("     ", 4))
}

func (s *DumpSuite) TestNoGuidesNoASCII(c *check.C) {
	cfg := plainConfig("x")
	cfg.Guides = false
	cfg.ASCII = false
	out, _ := run(c, []byte("AB"), cfg)

	c.Check(out, check.Equals, "41 42 "+strings.Repeat("   ", 14)+"\n2 bytes in `x`\n")
}

func (s *DumpSuite) TestColorsStripToPlain(c *check.C) {
	data := allBytes()
	plain, _ := run(c, data, plainConfig("x"))

	cfg := plainConfig("x")
	cfg.Colors = true
	colored, _ := run(c, data, cfg)

	c.Check(colored, check.Not(check.Equals), plain)
	c.Check(ansi.ReplaceAllString(colored, ""), check.Equals, plain)
	c.Check(strings.Contains(colored, "\x1b[36m41 "), check.Equals, true)
	c.Check(strings.Contains(colored, "\x1b[33m1B "), check.Equals, true)
	c.Check(strings.Contains(colored, "\x1b[90m00 "), check.Equals, true)
	c.Check(strings.Contains(colored, "\x1b[32;1m00000000 │ "), check.Equals, true)
}

func (s *DumpSuite) TestColoredLinesEndReset(c *check.C) {
	cfg := plainConfig("x")
	cfg.Colors = true
	out, _ := run(c, []byte("\x00abc\x1b\xff"), cfg)

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		seqs := ansi.FindAllString(line, -1)
		if len(seqs) == 0 {
			continue
		}
		last := seqs[len(seqs)-1]
		c.Check(strings.HasPrefix(last, "\x1b[0") || strings.HasPrefix(last, "\x1b[22") || strings.HasPrefix(last, "\x1b[39"),
			check.Equals, true, check.Commentf("line %q leaves attributes set", line))
	}
}

func (s *DumpSuite) TestIdempotent(c *check.C) {
	path := filepath.Join(c.MkDir(), "data.bin")
	c.Assert(os.WriteFile(path, bytes.Repeat(allBytes(), 2), 0600), check.IsNil)

	dumpFile := func() string {
		cfg := config.NewConfig()
		cfg.Path = path
		cfg.Offset = 3
		src, err := source.Open(logf.NewDisabledLogger(), path, cfg.Offset, cfg.Base.RowWidth())
		c.Assert(err, check.IsNil)
		defer src.Close()
		var out bytes.Buffer
		_, err = Run(context.Background(), src, cfg, &out)
		c.Assert(err, check.IsNil)
		return out.String()
	}
	c.Check(dumpFile(), check.Equals, dumpFile())
}

func (s *DumpSuite) TestInterruptAfterTwoRows(c *check.C) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := plainConfig("x")
	src := newMem(bytes.Repeat([]byte{0x41}, 160), cfg.Base)
	// cancel while the second row is being produced
	src.hook = func(call int) {
		if call == 2 {
			cancel()
		}
	}

	var out bytes.Buffer
	st, err := Run(ctx, src, cfg, &out)
	c.Assert(err, check.IsNil)
	c.Check(st, check.DeepEquals, Stats{Rows: 2, Bytes: 32, Interrupted: true})
	c.Check(strings.Count(out.String(), " │ 41 "), check.Equals, 2)
	c.Check(strings.HasSuffix(out.String(), hexRule("┴")+"\n32 bytes in `x`\n"), check.Equals, true)
}

func (s *DumpSuite) TestOversizedChunksSpanRows(c *check.C) {
	data := allBytes()[:40]
	cfg := plainConfig("x")
	// the source hands out more than one row per call
	src := &memSource{data: data, width: 40}

	var out bytes.Buffer
	st, err := Run(context.Background(), src, cfg, &out)
	c.Assert(err, check.IsNil)
	c.Check(st, check.DeepEquals, Stats{Rows: 3, Bytes: 40})
	c.Check(src.calls, check.Equals, 2)

	lines := strings.Split(out.String(), "\n")
	c.Check(strings.HasPrefix(lines[2], "00000000 │ 00 01 "), check.Equals, true)
	c.Check(strings.HasPrefix(lines[3], "00000010 │ 10 11 "), check.Equals, true)
	c.Check(strings.HasPrefix(lines[4], "00000020 │ 20 21 22 23 24 25 26 27 "+strings.Repeat("   ", 8)), check.Equals, true)

	var rows []Row
	for i := 0; i < 3; i++ {
		end := min((i+1)*16, len(data))
		rows = append(rows, FormatRow(uint64(i), data[i*16:end], cfg.Base))
	}
	c.Check(decode(c, rows, cfg.Base), check.DeepEquals, data)
}

func (s *DumpSuite) TestOversizedChunkRespectsLength(c *check.C) {
	cfg := plainConfig("x")
	cfg.SetLength(20)
	src := &memSource{data: allBytes()[:64], width: 64}

	var out bytes.Buffer
	st, err := Run(context.Background(), src, cfg, &out)
	c.Assert(err, check.IsNil)
	c.Check(st, check.DeepEquals, Stats{Rows: 2, Bytes: 20})
	c.Check(strings.HasSuffix(out.String(), "20 bytes in `x`\n"), check.Equals, true)
}

// failingWriter accepts ok writes, then fails every following one.
type failingWriter struct {
	ok  int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, w.err
	}
	w.ok--
	return len(p), nil
}

func (s *DumpSuite) TestWriteErrorStops(c *check.C) {
	broken := errors.New("broken pipe")
	w := &failingWriter{ok: 1, err: broken}
	src := newMem(bytes.Repeat([]byte{0x41}, 160), config.Hex)

	st, err := Run(context.Background(), src, plainConfig("x"), w)
	c.Check(errors.Is(err, broken), check.Equals, true)
	// the header is one write, the first row fails
	c.Check(st.Rows, check.Equals, uint64(0))
	c.Check(src.calls, check.Equals, 1)
}
