package main

import (
	"fmt"
	"io"

	"github.com/ssgreg/logf"

	"github.com/metametaclass/hexed/internal/config"
)

// CustomErrorEncoder writes the error message under k and, for the
// pkg/errors values returned by config and source, the %+v form with the
// stack trace under k+"_verbose".
func CustomErrorEncoder(k string, e error, m logf.FieldEncoder) {
	var msg string
	if e == nil {
		msg = "<nil>"
	} else {
		msg = e.Error()
	}
	m.EncodeFieldString(k, msg)

	formatter, ok := e.(fmt.Formatter)
	if ok {
		verbose := fmt.Sprintf("%+v", formatter)
		if verbose != msg {
			m.EncodeFieldString(k+"_verbose", verbose)
		}
	}
}

// Encoder renders hexed log entries as one JSON object per line on stderr,
// keeping them apart from the dump on stdout.
var Encoder = logf.NewJSONEncoder(logf.JSONEncoderConfig{EncodeError: CustomErrorEncoder})

// newLogger instantiates Logger from ssgreg/logf writing to w, with
// corresponding close func.
func newLogger(cfg *config.Config, w io.Writer) (*logf.Logger, logf.ChannelWriterCloseFunc) {
	level, ok := logf.LevelFromString(cfg.LogLevel)
	if !ok {
		level = logf.LevelWarn
	}

	channelWriterConfig := logf.ChannelWriterConfig{
		Appender: logf.NewWriteAppender(w, Encoder),
	}

	var writer logf.EntryWriter
	writer, closer := logf.NewChannelWriter(channelWriterConfig)

	logger := logf.NewLogger(level, writer).WithName(config.AppName)

	// show the file and line number of the caller when debugging
	if level == logf.LevelDebug {
		logger = logger.WithCaller()
	}

	return logger, closer
}
