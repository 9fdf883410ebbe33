// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logging builds the process-wide structured logger.
//
// Output is JSON on stdout. When a log file is configured, the same stream is
// teed into a size-rotated file.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"

	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
)

// Rotation limits for the optional log file.
const (
	maxSizeMB  = 50
	maxBackups = 5
	maxAgeDays = 14
)

// Options selects the logger's level and sinks.
type Options struct {
	Debug   bool
	LogFile string
	Stdout  io.Writer
}

// New returns the application logger and a closer for the rotated file.
// The closer is a no-op when no file is configured.
func New(options Options) (*slog.Logger, io.Closer) {
	var sink io.Writer = os.Stdout
	if options.Stdout != nil {
		sink = options.Stdout
	}

	var closer io.Closer = nopCloser{}
	if options.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   options.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		sink = io.MultiWriter(sink, rotating)
		closer = rotating
	}

	level := slog.LevelInfo
	if options.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName)), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
