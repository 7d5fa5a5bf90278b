package pkg

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lolocompany/wave-splitter/pkg/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingReporter remembers the order of reporting calls
type recordingReporter struct {
	calls []string
}

func (r *recordingReporter) HeaderParsed(path string, header wave.Header) {
	r.calls = append(r.calls, "parsed")
}

func (r *recordingReporter) Planned(plan SegmentPlan) {
	r.calls = append(r.calls, "planned")
}

func (r *recordingReporter) Writing(name string, header wave.Header) {
	r.calls = append(r.calls, "writing "+name)
}

func TestRun_SplitAndEncode(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	payload := testPayload(2700)
	path := writeWaveFile(t, in, payload)

	reporter := &recordingReporter{}
	result, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       27,
		Message:     "AB",
		Encode:      true,
		Destination: DirDestination{Dir: out},
		Reporter:    reporter,
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(100), result.Plan.SegmentBytes)
	assert.Len(t, result.Offsets, 27)
	assert.Len(t, result.Segments, 27)
	assert.Equal(t, "chunk0.wav", result.Segments[0])
	assert.Equal(t, DefaultEncodedName, result.EncodedName)
	assert.Equal(t, int64(200), result.EncodedBytes)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 28)

	_, data := readWaveFile(t, filepath.Join(out, DefaultEncodedName))
	assert.Equal(t, append(append([]byte{}, payload[100:200]...), payload[200:300]...), data)

	require.Len(t, reporter.calls, 2+27+1)
	assert.Equal(t, "parsed", reporter.calls[0])
	assert.Equal(t, "planned", reporter.calls[1])
	assert.Equal(t, "writing chunk0.wav", reporter.calls[2])
	assert.Equal(t, "writing encoded.wav", reporter.calls[29])
}

func TestRun_SplitOnly(t *testing.T) {
	out := t.TempDir()
	path := writeWaveFile(t, t.TempDir(), testPayload(100))

	result, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       4,
		Destination: DirDestination{Dir: out},
	})
	require.NoError(t, err)
	assert.Empty(t, result.EncodedName)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestRun_ZeroCountBeforeAnyIO(t *testing.T) {
	out := t.TempDir()
	_, err := Run(context.Background(), RunConfig{
		InputPath:   filepath.Join(t.TempDir(), "does-not-exist.wav"),
		Count:       0,
		Destination: DirDestination{Dir: out},
	})
	assert.ErrorIs(t, err, ErrInvalidCount)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_EmptyMessageBeforeAnyIO(t *testing.T) {
	out := t.TempDir()
	path := writeWaveFile(t, t.TempDir(), testPayload(270))

	_, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       27,
		Encode:      true,
		Destination: DirDestination{Dir: out},
	})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_InputOpenError(t *testing.T) {
	_, err := Run(context.Background(), RunConfig{
		InputPath:   filepath.Join(t.TempDir(), "missing.wav"),
		Count:       3,
		Destination: DiscardDestination{},
	})
	assert.ErrorIs(t, err, ErrInputOpen)
}

func TestRun_ShortHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF\x00\x00\x00\x00WAVE"), 0600))

	_, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       3,
		Destination: DiscardDestination{},
	})
	assert.ErrorIs(t, err, ErrInputOpen)
	assert.ErrorIs(t, err, wave.ErrShortHeader)
}

func TestRun_WrapSource(t *testing.T) {
	path := writeWaveFile(t, t.TempDir(), testPayload(90))

	var read int64
	var size int64
	_, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       27,
		Message:     "hi",
		Encode:      true,
		Destination: DiscardDestination{},
		WrapSource: func(source io.ReadSeeker, n int64) io.ReadSeeker {
			size = n
			return &countingSeeker{ReadSeeker: source, n: &read}
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(wave.HeaderSize+90), size)
	// Header, 27 segments of 3 bytes, two re-read segments
	assert.Equal(t, int64(wave.HeaderSize+27*3+2*3), read)
}

func TestRun_LogReporter(t *testing.T) {
	path := writeWaveFile(t, t.TempDir(), testPayload(1003))
	buf := &bytes.Buffer{}

	_, err := Run(context.Background(), RunConfig{
		InputPath:   path,
		Count:       10,
		Message:     "ab",
		Encode:      true,
		Destination: DiscardDestination{},
		Reporter:    NewLogReporter(buf),
	})
	require.NoError(t, err)

	log := buf.String()
	assert.Contains(t, log, "Input file RIFF/WAVE header information:")
	assert.Contains(t, log, "Full wave data size: 1003")
	assert.Contains(t, log, "Section size: 100")
	assert.Contains(t, log, "Dropped trailing bytes: 3")
	assert.Contains(t, log, "Creating output file chunk9.wav")
	assert.Contains(t, log, "Creating output file encoded.wav")
	// Once for the segments, once for the encoded file
	assert.Equal(t, 2, strings.Count(log, "Output file RIFF/WAVE header information:"))
}

type countingSeeker struct {
	io.ReadSeeker
	n *int64
}

func (c *countingSeeker) Read(p []byte) (int, error) {
	n, err := c.ReadSeeker.Read(p)
	*c.n += int64(n)
	return n, err
}
