package wave

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrPayloadOverflow is returned when more payload is written than the header declares
	ErrPayloadOverflow = errors.New("payload exceeds declared data size")
	// ErrPayloadShort is returned on Close when less payload was written than the header declares
	ErrPayloadShort = errors.New("payload shorter than declared data size")
)

// Writer writes a WAVE file whose header declares a fixed payload size
type Writer struct {
	writer     io.Writer
	declared   int64
	written    int64
	totalBytes int64
}

// NewWriter creates a new writer for a WAVE file carrying payloadSize bytes.
// It writes the synthesized header immediately so the header always precedes the payload.
func NewWriter(writer io.Writer, base Header, payloadSize uint64) (*Writer, error) {
	header, err := Synthesize(base, payloadSize)
	if err != nil {
		return nil, err
	}

	if _, err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write wave header: %w", err)
	}

	return &Writer{
		writer:     writer,
		declared:   int64(payloadSize),
		totalBytes: HeaderSize,
	}, nil
}

// Write appends payload bytes
func (w *Writer) Write(p []byte) (int, error) {
	if w.written+int64(len(p)) > w.declared {
		return 0, fmt.Errorf("%w: %d + %d > %d", ErrPayloadOverflow, w.written, len(p), w.declared)
	}

	n, err := w.writer.Write(p)
	w.written += int64(n)
	w.totalBytes += int64(n)
	return n, err
}

// Remaining returns the number of payload bytes still expected
func (w *Writer) Remaining() int64 {
	return w.declared - w.written
}

// TotalBytes returns the total number of bytes written so far (including header)
func (w *Writer) TotalBytes() int64 {
	return w.totalBytes
}

// Close verifies the payload is complete and closes the underlying writer if it implements io.Closer.
// The underlying writer is closed even when the payload is short.
func (w *Writer) Close() error {
	var err error
	if w.written != w.declared {
		err = fmt.Errorf("%w: wrote %d of %d bytes", ErrPayloadShort, w.written, w.declared)
	}
	if closer, ok := w.writer.(io.Closer); ok {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
