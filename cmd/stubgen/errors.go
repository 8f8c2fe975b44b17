package main

import (
	"errors"
	"strings"

	"github.com/srg/btmock/internal/stubgen"
)

// Command-level errors
var (
	// ErrStale indicates --check found a generated file that differs from its manifest.
	ErrStale = errors.New("generated file is out of date")
)

// FormatUserError turns an error chain into a one-line message for the terminal.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var merr *stubgen.ManifestError
	switch {
	case errors.As(err, &merr):
		return merr.Error()
	case errors.Is(err, ErrStale):
		return err.Error() + " (run 'go generate ./...')"
	default:
		return strings.TrimSpace(err.Error())
	}
}
