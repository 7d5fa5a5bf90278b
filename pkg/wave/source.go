package wave

import (
	"fmt"

	"codeberg.org/go-mmap/mmap"
)

// Source is a read-only memory-mapped view of an input file with a single read cursor
type Source struct {
	file *mmap.File
	path string
}

// OpenSource maps the file at path for reading
func OpenSource(path string) (*Source, error) {
	file, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return &Source{file: file, path: path}, nil
}

// Path returns the path the source was opened from
func (s *Source) Path() string {
	return s.path
}

// Size returns the length of the mapped file in bytes
func (s *Source) Size() int64 {
	return int64(s.file.Len())
}

// Read reads from the current cursor position
func (s *Source) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

// ReadAt reads len(p) bytes at off without moving the cursor
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	return s.file.ReadAt(p, off)
}

// Seek moves the read cursor
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	return s.file.Seek(offset, whence)
}

// Close unmaps the file
func (s *Source) Close() error {
	return s.file.Close()
}
