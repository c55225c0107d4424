package source

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/ssgreg/logf"
)

// Source yields consecutive chunks of a byte stream
type Source interface {
	io.Closer
	// Next returns the next chunk, or nil when no bytes remain. The
	// returned slice is only valid until the following call.
	Next() []byte
}

// File implements Source over a regular file
type File struct {
	logger    *logf.Logger
	file      *os.File
	buf       []byte
	remaining uint64
	done      bool
}

// Open opens path and positions it at offset. An offset past the end of
// the file is clamped, leaving nothing to read.
func Open(logger *logf.Logger, path string, offset uint64, width int) (*File, error) {
	if width <= 0 {
		return nil, errors.Errorf("Open: invalid chunk width %d", width)
	}
	f, err := os.Open(path) //nolint:gosec // dumping a user-chosen file is the point
	if err != nil {
		return nil, errors.WithStack(&Error{Kind: ErrOpenFailed, Path: path, Err: err})
	}
	info, err := f.Stat()
	if err == nil && info.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			logger.Warn("Open: Close failed", logf.Error(closeErr))
		}
		return nil, errors.WithStack(&Error{Kind: ErrOpenFailed, Path: path, Err: err})
	}

	size := uint64(info.Size())
	if offset > size {
		logger.Debug("Open: offset past end of file, clamping",
			logf.Uint64("offset", offset),
			logf.Uint64("size", size),
		)
		offset = size
	}
	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			logger.Warn("Open: Close failed", logf.Error(closeErr))
		}
		return nil, errors.WithStack(&Error{Kind: ErrSeekFailed, Path: path, Err: err})
	}

	s := &File{
		logger:    logger,
		file:      f,
		buf:       make([]byte, width),
		remaining: size - offset,
	}
	logger.Debug("source opened",
		logf.String("path", path),
		logf.Uint64("offset", offset),
		logf.String("remaining", humanize.IBytes(s.Remaining())),
	)
	return s, nil
}

// Remaining returns the number of bytes between the start offset and the
// end of the file at the time it was opened.
func (s *File) Remaining() uint64 {
	return s.remaining
}

func (s *File) Next() []byte {
	if s.done {
		return nil
	}
	n, err := io.ReadFull(s.file, s.buf)
	if err != nil {
		// a short or failed read ends the stream after whatever it returned
		s.done = true
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			s.logger.Debug("Next: read failed, treating as end of stream", logf.Error(err))
		}
	}
	if n == 0 {
		return nil
	}
	return s.buf[:n]
}

func (s *File) Close() error {
	return s.file.Close()
}
