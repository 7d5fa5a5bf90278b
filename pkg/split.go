package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// SegmentConfig holds configuration for the EmitSegments function
type SegmentConfig struct {
	// Source must be positioned at the first payload byte
	Source      io.ReadSeeker
	Header      wave.Header
	Plan        SegmentPlan
	Destination Destination
	NamePattern string
	Reporter    Reporter
}

// EmitSegments writes one WAVE file per planned segment, in ascending index order,
// and returns the source offset at which each segment's read began.
// A failure aborts the remaining segments; files already written are left in place.
func EmitSegments(ctx context.Context, cfg SegmentConfig) (OffsetTable, error) {
	if cfg.Source == nil {
		return nil, errors.New("source is required")
	}
	if cfg.Destination == nil {
		return nil, errors.New("destination is required")
	}
	if cfg.Plan.Count == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInvalidCount)
	}
	reporter := reporterOrNop(cfg.Reporter)

	segmentHeader, err := cfg.Header.WithPayload(uint64(cfg.Plan.SegmentBytes))
	if err != nil {
		return nil, err
	}

	offsets := make(OffsetTable, 0, cfg.Plan.Count)
	for i := 0; i < int(cfg.Plan.Count); i++ {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return offsets, ctx.Err()
		default:
		}

		name := SegmentName(cfg.NamePattern, i)
		reporter.Writing(name, segmentHeader)

		offset, err := emitSegment(cfg, name)
		if err != nil {
			return offsets, err
		}
		offsets = append(offsets, offset)
	}

	return offsets, nil
}

// emitSegment writes a single segment file and returns the source offset its payload was read from
func emitSegment(cfg SegmentConfig, name string) (offset int64, err error) {
	out, err := cfg.Destination.Create(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}

	writer, err := wave.NewWriter(out, cfg.Header, uint64(cfg.Plan.SegmentBytes))
	if err != nil {
		out.Close()
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, cerr)
		}
	}()

	offset, err = cfg.Source.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to read source position: %w", err)
	}

	if err := copyPayload(writer, cfg.Source, int64(cfg.Plan.SegmentBytes), name); err != nil {
		return 0, err
	}
	return offset, nil
}

// copyPayload copies exactly n bytes from src to dst and classifies failures by side
func copyPayload(dst io.Writer, src io.Reader, n int64, name string) error {
	copied, err := io.CopyN(dst, sourceReader{src}, n)
	if err == nil {
		return nil
	}

	var rerr sourceReadError
	switch {
	case err == io.EOF:
		return fmt.Errorf("%w: %s: got %d of %d bytes", ErrTruncatedInput, name, copied, n)
	case errors.As(err, &rerr):
		return fmt.Errorf("failed to read source for %s: %w", name, rerr.err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}
}

// sourceReader marks read errors so they are not mistaken for output failures
type sourceReader struct {
	r io.Reader
}

func (s sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		err = sourceReadError{err}
	}
	return n, err
}

type sourceReadError struct {
	err error
}

func (e sourceReadError) Error() string { return e.err.Error() }
func (e sourceReadError) Unwrap() error { return e.err }
