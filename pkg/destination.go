package pkg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DefaultNamePattern names segment files by their ordinal
	DefaultNamePattern = "chunk%d.wav"
	// DefaultEncodedName is the file name of the message-encoded output
	DefaultEncodedName = "encoded.wav"
)

// Destination creates the files a run produces
type Destination interface {
	Create(name string) (io.WriteCloser, error)
}

// SegmentName returns the file name of segment index for a printf-style pattern with one integer verb
func SegmentName(pattern string, index int) string {
	if pattern == "" {
		pattern = DefaultNamePattern
	}
	return fmt.Sprintf(pattern, index)
}

// DirDestination writes files into a directory on disk
type DirDestination struct {
	Dir string
}

// Create creates (or truncates) name inside the directory
func (d DirDestination) Create(name string) (io.WriteCloser, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	return os.Create(filepath.Join(dir, name))
}

// MultiDestination fans every file out to all of its destinations
type MultiDestination []Destination

// Create creates name in every destination
func (m MultiDestination) Create(name string) (io.WriteCloser, error) {
	writers := make([]io.Writer, 0, len(m))
	closers := make([]io.Closer, 0, len(m))
	for _, dest := range m {
		wc, err := dest.Create(name)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, err
		}
		writers = append(writers, wc)
		closers = append(closers, wc)
	}
	return &multiWriteCloser{Writer: io.MultiWriter(writers...), closers: closers}, nil
}

type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DiscardDestination accepts every file and keeps nothing
type DiscardDestination struct{}

// Create returns a writer that discards everything
func (DiscardDestination) Create(name string) (io.WriteCloser, error) {
	return nopWriteCloser{io.Discard}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
