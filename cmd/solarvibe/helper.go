package main

import (
	"fmt"
	"io"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/magi42/solarvibe"
)

const dateFormat = "2006-01-02 15:04:05"

// newLogger returns the logger described by the configuration, writing to w.
func newLogger(cfg solarvibe.LogConfig, w io.Writer) (kitlog.Logger, error) {
	var logger kitlog.Logger
	switch cfg.Format {
	case "", "logfmt":
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	case "json":
		logger = kitlog.NewJSONLogger(kitlog.NewSyncWriter(w))
	default:
		return nil, fmt.Errorf("unknown log format '%s'", cfg.Format)
	}
	var allow level.Option
	switch cfg.Level {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level '%s'", cfg.Level)
	}
	logger = level.NewFilter(logger, allow)
	return kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller), nil
}

// parseTime reads an RFC 3339 or "2006-01-02 15:04:05" UTC instant. An empty
// string is the current time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse '%s' as a date", s)
	}
	return t, nil
}

// loadCatalogue reads the catalogue file, or returns the built-in solar system.
func loadCatalogue(path string) (*solarvibe.Catalogue, error) {
	if path == "" {
		return solarvibe.SolarSystem(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cat, err := solarvibe.ReadCatalogue(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
