package wave

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcmHeader returns a mono 16-bit 22050Hz header declaring dataSize payload bytes
func pcmHeader(dataSize uint32) Header {
	return Header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     dataSize + ChunkSizeOffset,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    22050,
		ByteRate:      44100,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
}

func TestParse_Layout(t *testing.T) {
	b := make([]byte, HeaderSize)
	copy(b[0:], "RIFF")
	binary.LittleEndian.PutUint32(b[4:], 2736)
	copy(b[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(b[16:], 16)
	binary.LittleEndian.PutUint16(b[20:], 1)
	binary.LittleEndian.PutUint16(b[22:], 2)
	binary.LittleEndian.PutUint32(b[24:], 44100)
	binary.LittleEndian.PutUint32(b[28:], 176400)
	binary.LittleEndian.PutUint16(b[32:], 4)
	binary.LittleEndian.PutUint16(b[34:], 16)
	copy(b[36:], "data")
	binary.LittleEndian.PutUint32(b[40:], 2700)

	h, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{'R', 'I', 'F', 'F'}, h.ChunkID)
	assert.Equal(t, uint32(2736), h.ChunkSize)
	assert.Equal(t, [4]byte{'W', 'A', 'V', 'E'}, h.Format)
	assert.Equal(t, [4]byte{'f', 'm', 't', ' '}, h.Subchunk1ID)
	assert.Equal(t, uint32(16), h.Subchunk1Size)
	assert.Equal(t, uint16(1), h.AudioFormat)
	assert.Equal(t, uint16(2), h.NumChannels)
	assert.Equal(t, uint32(44100), h.SampleRate)
	assert.Equal(t, uint32(176400), h.ByteRate)
	assert.Equal(t, uint16(4), h.BlockAlign)
	assert.Equal(t, uint16(16), h.BitsPerSample)
	assert.Equal(t, [4]byte{'d', 'a', 't', 'a'}, h.Subchunk2ID)
	assert.Equal(t, uint32(2700), h.Subchunk2Size)

	// Encoding back yields the same bytes
	assert.Equal(t, b, h.Bytes())
}

func TestParse_AcceptsUnexpectedTags(t *testing.T) {
	h := pcmHeader(100)
	h.ChunkID = [4]byte{0xff, 'I', 'F', 0x00}
	h.AudioFormat = 3

	parsed, err := Parse(h.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParse_Short(t *testing.T) {
	_, err := Parse(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrShortHeader)
}

func TestReadHeader(t *testing.T) {
	h := pcmHeader(8)
	buf := bytes.NewBuffer(h.Bytes())
	buf.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	parsed, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
	assert.Equal(t, 8, buf.Len())

	_, err = ReadHeader(bytes.NewReader([]byte("RIFF")))
	assert.ErrorIs(t, err, ErrShortHeader)
}

func TestSynthesize_RoundTrip(t *testing.T) {
	base := pcmHeader(2700)
	base.ChunkID = [4]byte{'r', 'i', 'f', 'x'}

	for _, size := range []uint64{0, 1, 100, 2700, MaxPayloadSize} {
		out, err := Synthesize(base, size)
		require.NoError(t, err)
		require.Len(t, out, HeaderSize)

		parsed, err := Parse(out)
		require.NoError(t, err)
		assert.Equal(t, uint32(size+ChunkSizeOffset), parsed.ChunkSize)
		assert.Equal(t, uint32(size), parsed.Subchunk2Size)

		// Every other field is copied verbatim
		parsed.ChunkSize = base.ChunkSize
		parsed.Subchunk2Size = base.Subchunk2Size
		assert.Equal(t, base, parsed)
	}
}

func TestSynthesize_SegmentSizes(t *testing.T) {
	out, err := Synthesize(pcmHeader(2700), 100)
	require.NoError(t, err)
	assert.Equal(t, uint32(136), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(100), binary.LittleEndian.Uint32(out[40:44]))
}

func TestSynthesize_InvalidSize(t *testing.T) {
	_, err := Synthesize(pcmHeader(0), MaxPayloadSize+1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Synthesize(pcmHeader(0), 1<<40)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestHeader_WithPayloadDoesNotMutate(t *testing.T) {
	base := pcmHeader(2700)
	h, err := base.WithPayload(10)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), h.Subchunk2Size)
	assert.Equal(t, uint32(2700), base.Subchunk2Size)
}
