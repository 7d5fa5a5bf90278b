package pkg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/lolocompany/wave-splitter/pkg/wave"
	"golang.org/x/time/rate"
)

// MessageWriter publishes one keyed message
type MessageWriter interface {
	WriteMessage(ctx context.Context, key, value []byte, headers map[string]string) error
}

// PublishDestination sends every produced WAVE file as one message, keyed by file name.
// Files are published when they are closed, so a file that fails mid-write is never sent.
type PublishDestination struct {
	ctx       context.Context
	writer    MessageWriter
	limiter   *rate.Limiter
	published int
}

// NewPublishDestination creates a destination publishing through writer.
// ratePerSecond limits published files per second; 0 means unlimited.
func NewPublishDestination(ctx context.Context, writer MessageWriter, ratePerSecond int) *PublishDestination {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	return &PublishDestination{
		ctx:     ctx,
		writer:  writer,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Create buffers the file named name until it is closed
func (d *PublishDestination) Create(name string) (io.WriteCloser, error) {
	return &publishedFile{dest: d, name: name}, nil
}

// Published returns the number of files sent so far
func (d *PublishDestination) Published() int {
	return d.published
}

func (d *PublishDestination) publish(name string, data []byte) error {
	h, err := wave.Parse(data)
	if err != nil {
		return fmt.Errorf("not publishing %s: %w", name, err)
	}
	if int64(len(data)) != wave.HeaderSize+int64(h.Subchunk2Size) {
		return fmt.Errorf("not publishing incomplete file %s: %d bytes, header declares %d", name, len(data), wave.HeaderSize+int64(h.Subchunk2Size))
	}

	headers := map[string]string{
		"content-type": "audio/wav",
		"file-name":    name,
		"data-size":    strconv.FormatUint(uint64(h.Subchunk2Size), 10),
		"sample-rate":  strconv.FormatUint(uint64(h.SampleRate), 10),
	}

	if err := d.limiter.Wait(d.ctx); err != nil {
		return err
	}
	if err := d.writer.WriteMessage(d.ctx, []byte(name), data, headers); err != nil {
		return fmt.Errorf("failed to publish %s: %w", name, err)
	}
	d.published++
	return nil
}

type publishedFile struct {
	dest *PublishDestination
	name string
	buf  bytes.Buffer
}

func (f *publishedFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *publishedFile) Close() error {
	return f.dest.publish(f.name, f.buf.Bytes())
}
