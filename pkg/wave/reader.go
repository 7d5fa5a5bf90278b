package wave

import (
	"fmt"
	"io"
)

// Reader reads the payload of a WAVE file after its canonical header
type Reader struct {
	reader          io.ReadSeeker
	header          Header
	dataStartOffset int64 // Offset after the header where sample data starts
}

// NewReader reads the header from the start of reader and leaves it positioned at the first payload byte
func NewReader(reader io.ReadSeeker) (*Reader, error) {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to header: %w", err)
	}

	header, err := ReadHeader(reader)
	if err != nil {
		return nil, err
	}

	return &Reader{
		reader:          reader,
		header:          header,
		dataStartOffset: HeaderSize,
	}, nil
}

// Header returns the parsed header
func (r *Reader) Header() Header {
	return r.header
}

// DataStart returns the offset of the first payload byte
func (r *Reader) DataStart() int64 {
	return r.dataStartOffset
}

// Read reads payload bytes from the current position
func (r *Reader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

// Seek moves the underlying read cursor
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return r.reader.Seek(offset, whence)
}

// Position returns the current offset of the read cursor
func (r *Reader) Position() (int64, error) {
	return r.reader.Seek(0, io.SeekCurrent)
}

// Reset seeks back to the start of the payload
func (r *Reader) Reset() error {
	_, err := r.reader.Seek(r.dataStartOffset, io.SeekStart)
	return err
}

// Close closes the underlying reader if it implements io.Closer
func (r *Reader) Close() error {
	if closer, ok := r.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
