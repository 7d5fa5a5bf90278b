package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// EncodeConfig holds configuration for the EncodeMessage function
type EncodeConfig struct {
	Source      io.ReadSeeker
	Header      wave.Header
	Plan        SegmentPlan
	Offsets     OffsetTable
	Message     string
	Destination Destination
	Name        string
	Reporter    Reporter
}

// EncodeMessage writes a WAVE file whose payload is one segment per message character,
// in message order, chosen by SymbolIndex. It returns the payload size written.
func EncodeMessage(ctx context.Context, cfg EncodeConfig) (int64, error) {
	if cfg.Message == "" {
		return 0, ErrEmptyMessage
	}
	if cfg.Source == nil {
		return 0, errors.New("source is required")
	}
	if cfg.Destination == nil {
		return 0, errors.New("destination is required")
	}
	name := cfg.Name
	if name == "" {
		name = DefaultEncodedName
	}
	reporter := reporterOrNop(cfg.Reporter)

	indices := MessageIndices(cfg.Message, cfg.Plan.Count)
	segmentBytes := int64(cfg.Plan.SegmentBytes)
	payloadSize := uint64(cfg.Plan.SegmentBytes) * uint64(len(indices))
	header, err := cfg.Header.WithPayload(payloadSize)
	if err != nil {
		return 0, err
	}

	// Validate every offset up front so no encoded file is started for an inconsistent table
	sourceSize, err := cfg.Source.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeek, err)
	}
	for pos, index := range indices {
		if index >= len(cfg.Offsets) {
			return 0, fmt.Errorf("%w: character %d maps to segment %d but only %d offsets are recorded", ErrSeek, pos, index, len(cfg.Offsets))
		}
		offset := cfg.Offsets[index]
		if offset < 0 || offset+segmentBytes > sourceSize {
			return 0, fmt.Errorf("%w: segment %d at offset %d (+%d) exceeds source size %d", ErrSeek, index, offset, segmentBytes, sourceSize)
		}
	}

	reporter.Writing(name, header)
	out, err := cfg.Destination.Create(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}

	writer, err := wave.NewWriter(out, cfg.Header, payloadSize)
	if err != nil {
		out.Close()
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}

	if err := writeSymbols(ctx, cfg.Source, writer, cfg.Offsets, indices, segmentBytes, name); err != nil {
		writer.Close()
		return 0, err
	}

	if err := writer.Close(); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOutputWrite, name, err)
	}
	return int64(payloadSize), nil
}

// writeSymbols re-reads one segment per index from the source and appends it to the writer
func writeSymbols(ctx context.Context, source io.ReadSeeker, writer io.Writer, offsets OffsetTable, indices []int, segmentBytes int64, name string) error {
	for _, index := range indices {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := source.Seek(offsets[index], io.SeekStart); err != nil {
			return fmt.Errorf("%w: segment %d at offset %d: %w", ErrSeek, index, offsets[index], err)
		}
		if err := copyPayload(writer, source, segmentBytes, name); err != nil {
			return err
		}
	}
	return nil
}
