package wave

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReader(t *testing.T) {
	payload := []byte("0123456789")
	file := append(pcmHeader(uint32(len(payload))).Bytes(), payload...)

	r, err := NewReader(bytes.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize), r.DataStart())
	assert.Equal(t, uint32(len(payload)), r.Header().Subchunk2Size)

	pos, err := r.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize), pos)

	got := make([]byte, 4)
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123"), got)

	require.NoError(t, r.Reset())
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, rest)
}

func TestNewReader_RewindsBeforeHeader(t *testing.T) {
	file := append(pcmHeader(2).Bytes(), 'a', 'b')
	rs := bytes.NewReader(file)
	_, err := rs.Seek(10, io.SeekStart)
	require.NoError(t, err)

	r, err := NewReader(rs)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), r.Header().Subchunk2Size)
}

func TestNewReader_ShortHeader(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("RIFF....WAVE")))
	assert.ErrorIs(t, err, ErrShortHeader)
}
