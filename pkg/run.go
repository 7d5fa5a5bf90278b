package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// RunConfig is the validated parameter bundle for a full split (and optional encode) run
type RunConfig struct {
	InputPath   string
	Count       uint32
	Message     string
	Encode      bool
	Destination Destination
	NamePattern string
	EncodedName string
	Reporter    Reporter
	// WrapSource lets the caller observe source reads, e.g. to drive a progress bar
	WrapSource func(source io.ReadSeeker, size int64) io.ReadSeeker
}

// RunResult describes what a run produced
type RunResult struct {
	Header       wave.Header `json:"-" yaml:"-"`
	Plan         SegmentPlan `json:"plan" yaml:"plan"`
	Offsets      OffsetTable `json:"offsets" yaml:"offsets"`
	Segments     []string    `json:"segments" yaml:"segments"`
	EncodedName  string      `json:"encodedName,omitempty" yaml:"encoded_name,omitempty"`
	EncodedBytes int64       `json:"encodedBytes,omitempty" yaml:"encoded_bytes,omitempty"`
}

// Run parses the input header, plans the segments, writes every segment file and,
// when Encode is set, the message-encoded file. The input stays open for the whole run.
func Run(ctx context.Context, cfg RunConfig) (*RunResult, error) {
	if cfg.Count == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrInvalidCount)
	}
	if cfg.Encode && cfg.Message == "" {
		return nil, ErrEmptyMessage
	}
	if cfg.Destination == nil {
		return nil, errors.New("destination is required")
	}
	reporter := reporterOrNop(cfg.Reporter)

	source, err := wave.OpenSource(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputOpen, cfg.InputPath, err)
	}
	defer source.Close()

	var stream io.ReadSeeker = source
	if cfg.WrapSource != nil {
		stream = cfg.WrapSource(source, source.Size())
	}

	reader, err := wave.NewReader(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputOpen, cfg.InputPath, err)
	}
	header := reader.Header()
	reporter.HeaderParsed(cfg.InputPath, header)

	plan, err := Plan(header.Subchunk2Size, cfg.Count)
	if err != nil {
		return nil, err
	}
	reporter.Planned(plan)

	result := &RunResult{Header: header, Plan: plan}
	result.Offsets, err = EmitSegments(ctx, SegmentConfig{
		Source:      reader,
		Header:      header,
		Plan:        plan,
		Destination: cfg.Destination,
		NamePattern: cfg.NamePattern,
		Reporter:    reporter,
	})
	for i := range result.Offsets {
		result.Segments = append(result.Segments, SegmentName(cfg.NamePattern, i))
	}
	if err != nil {
		return result, err
	}

	if !cfg.Encode {
		return result, nil
	}

	encodedName := cfg.EncodedName
	if encodedName == "" {
		encodedName = DefaultEncodedName
	}
	result.EncodedBytes, err = EncodeMessage(ctx, EncodeConfig{
		Source:      reader,
		Header:      header,
		Plan:        plan,
		Offsets:     result.Offsets,
		Message:     cfg.Message,
		Destination: cfg.Destination,
		Name:        encodedName,
		Reporter:    reporter,
	})
	if err != nil {
		return result, err
	}
	result.EncodedName = encodedName
	return result, nil
}
