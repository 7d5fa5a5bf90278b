package util

import (
	"errors"

	"github.com/lolocompany/wave-splitter/cmd/wave-splitter/config"
	"github.com/lolocompany/wave-splitter/pkg"
	"github.com/lolocompany/wave-splitter/pkg/kafka"
	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// Process exit codes
const (
	ExitUsage        = 1
	ExitIO           = 2
	ExitConnectivity = 3
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, kafka.ErrUnreachable):
		return ExitConnectivity
	case errors.Is(err, pkg.ErrInvalidCount),
		errors.Is(err, pkg.ErrEmptyMessage),
		errors.Is(err, config.ErrNoBrokers):
		return ExitUsage
	case errors.Is(err, pkg.ErrInputOpen),
		errors.Is(err, pkg.ErrOutputWrite),
		errors.Is(err, pkg.ErrSeek),
		errors.Is(err, pkg.ErrTruncatedInput),
		errors.Is(err, wave.ErrInvalidSize):
		return ExitIO
	default:
		return ExitUsage
	}
}
