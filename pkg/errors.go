package pkg

import "errors"

var (
	// ErrInvalidCount is returned when the segment count is zero
	ErrInvalidCount = errors.New("segment count must be a positive integer")
	// ErrInputOpen is returned when the input file cannot be opened or its header read
	ErrInputOpen = errors.New("cannot open input file")
	// ErrEmptyMessage is returned when message encoding is requested with an empty message
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrOutputWrite is returned when an output file cannot be created or written
	ErrOutputWrite = errors.New("cannot write output file")
	// ErrSeek is returned when a recorded segment offset is not readable in the source
	ErrSeek = errors.New("segment offset out of range")
	// ErrTruncatedInput is returned when the source ends before a segment is complete
	ErrTruncatedInput = errors.New("input ends before declared data size")
)
