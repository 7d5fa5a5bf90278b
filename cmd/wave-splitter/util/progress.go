package util

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressSpinner wraps a progressbar spinner. A nil spinner is valid and does nothing.
type ProgressSpinner struct {
	bar *progressbar.ProgressBar
}

// AddBytes adds bytes to the spinner for speed/total display
func (p *ProgressSpinner) AddBytes(delta int64) {
	if p != nil && p.bar != nil {
		_ = p.bar.Add64(delta)
	}
}

// Close closes the spinner
func (p *ProgressSpinner) Close() error {
	if p != nil && p.bar != nil {
		return p.bar.Close()
	}
	return nil
}

// NewProgressSpinner creates an indeterminate progress spinner
func NewProgressSpinner(description string) *ProgressSpinner {
	return &ProgressSpinner{
		bar: progressbar.DefaultBytes(-1, description),
	}
}

type byteCounter struct {
	spinner *ProgressSpinner
}

func (bc *byteCounter) Write(p []byte) (int, error) {
	bc.spinner.AddBytes(int64(len(p)))
	return len(p), nil
}

// CountingReadSeeker wraps a ReadSeeker to count bytes for the spinner
// We need a wrapper struct because io.TeeReader only returns io.Reader, not io.ReadSeeker.
// When Seek is called, we recreate the TeeReader to read from the new position.
func CountingReadSeeker(seeker io.ReadSeeker, spinner *ProgressSpinner) io.ReadSeeker {
	counter := &byteCounter{spinner: spinner}
	teeReader := io.TeeReader(seeker, counter)

	return &readSeeker{
		reader:  teeReader,
		seeker:  seeker,
		counter: counter,
	}
}

type readSeeker struct {
	reader  io.Reader
	seeker  io.ReadSeeker
	counter io.Writer
}

func (rs *readSeeker) Read(p []byte) (int, error) {
	return rs.reader.Read(p)
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := rs.seeker.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	rs.reader = io.TeeReader(rs.seeker, rs.counter)
	return pos, nil
}
