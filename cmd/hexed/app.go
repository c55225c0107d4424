package main

import (
	"bufio"
	"context"
	"io"

	"github.com/ssgreg/logf"

	"github.com/metametaclass/hexed/internal/config"
	"github.com/metametaclass/hexed/internal/dump"
	"github.com/metametaclass/hexed/internal/source"
)

// Execute dumps cfg.Path to stdout. Logs go to stderr.
func Execute(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logger, loggerClose := newLogger(cfg, stderr)
	defer loggerClose()
	err := executeInner(ctx, logger, cfg, stdout)
	if err != nil {
		logger.Debug("Execute: executeInner failed", logf.Error(err))
		return err
	}
	return nil
}

func executeInner(ctx context.Context, logger *logf.Logger, cfg *config.Config, stdout io.Writer) error {
	logger.Debug("configuration resolved",
		logf.String("path", cfg.Path),
		logf.String("base", cfg.Base.String()),
		logf.Uint64("offset", cfg.Offset),
		logf.Bool("guides", cfg.Guides),
		logf.Bool("colors", cfg.Colors),
		logf.Bool("ascii", cfg.ASCII),
	)

	src, err := source.Open(logger, cfg.Path, cfg.Offset, cfg.Base.RowWidth())
	if err != nil {
		return err
	}
	defer func() {
		err := src.Close()
		if err != nil {
			logger.Warn("source.Close failed", logf.Error(err))
		}
	}()

	out := bufio.NewWriter(stdout)
	stats, err := dump.Run(ctx, src, cfg, out)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		// the reader went away, there is nobody left to tell
		logger.Debug("output closed, dump aborted", logf.Error(err))
		return nil
	}

	logger.Info("dump finished",
		logf.Uint64("rows", stats.Rows),
		logf.Uint64("bytes", stats.Bytes),
		logf.Bool("interrupted", stats.Interrupted),
	)
	return nil
}
