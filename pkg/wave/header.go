package wave

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortHeader is returned when fewer than HeaderSize bytes are available
	ErrShortHeader = errors.New("wave header shorter than 44 bytes")
	// ErrInvalidSize is returned when a payload size does not fit the header size fields
	ErrInvalidSize = errors.New("payload size does not fit the header size fields")
)

// Header is the canonical 44-byte RIFF/WAVE header.
// Tags are kept as raw bytes and are never validated.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// Parse decodes the first HeaderSize bytes of b
func Parse(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes", ErrShortHeader, len(b))
	}

	le := binary.LittleEndian
	var h Header
	copy(h.ChunkID[:], b[offChunkID:offChunkSize])
	h.ChunkSize = le.Uint32(b[offChunkSize:offFormat])
	copy(h.Format[:], b[offFormat:offSubchunk1ID])
	copy(h.Subchunk1ID[:], b[offSubchunk1ID:offSubchunk1Size])
	h.Subchunk1Size = le.Uint32(b[offSubchunk1Size:offAudioFormat])
	h.AudioFormat = le.Uint16(b[offAudioFormat:offNumChannels])
	h.NumChannels = le.Uint16(b[offNumChannels:offSampleRate])
	h.SampleRate = le.Uint32(b[offSampleRate:offByteRate])
	h.ByteRate = le.Uint32(b[offByteRate:offBlockAlign])
	h.BlockAlign = le.Uint16(b[offBlockAlign:offBitsPerSample])
	h.BitsPerSample = le.Uint16(b[offBitsPerSample:offSubchunk2ID])
	copy(h.Subchunk2ID[:], b[offSubchunk2ID:offSubchunk2Size])
	h.Subchunk2Size = le.Uint32(b[offSubchunk2Size:HeaderSize])
	return h, nil
}

// ReadHeader reads exactly HeaderSize bytes from r and parses them
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("%w: got %d bytes", ErrShortHeader, n)
		}
		return Header{}, fmt.Errorf("failed to read wave header: %w", err)
	}
	return Parse(buf)
}

// Bytes encodes the header into its 44-byte little-endian layout
func (h Header) Bytes() []byte {
	le := binary.LittleEndian
	b := make([]byte, HeaderSize)
	copy(b[offChunkID:], h.ChunkID[:])
	le.PutUint32(b[offChunkSize:], h.ChunkSize)
	copy(b[offFormat:], h.Format[:])
	copy(b[offSubchunk1ID:], h.Subchunk1ID[:])
	le.PutUint32(b[offSubchunk1Size:], h.Subchunk1Size)
	le.PutUint16(b[offAudioFormat:], h.AudioFormat)
	le.PutUint16(b[offNumChannels:], h.NumChannels)
	le.PutUint32(b[offSampleRate:], h.SampleRate)
	le.PutUint32(b[offByteRate:], h.ByteRate)
	le.PutUint16(b[offBlockAlign:], h.BlockAlign)
	le.PutUint16(b[offBitsPerSample:], h.BitsPerSample)
	copy(b[offSubchunk2ID:], h.Subchunk2ID[:])
	le.PutUint32(b[offSubchunk2Size:], h.Subchunk2Size)
	return b
}

// WithPayload returns a copy of h whose two size fields describe a payload of the given size
func (h Header) WithPayload(payloadSize uint64) (Header, error) {
	if payloadSize > MaxPayloadSize {
		return Header{}, fmt.Errorf("%w: %d bytes (max %d)", ErrInvalidSize, payloadSize, uint64(MaxPayloadSize))
	}
	h.ChunkSize = uint32(payloadSize) + ChunkSizeOffset
	h.Subchunk2Size = uint32(payloadSize)
	return h, nil
}

// Synthesize builds the header of a new file carrying payloadSize bytes of data.
// Every field except the chunk size and the data sub-chunk size is copied from base.
func Synthesize(base Header, payloadSize uint64) ([]byte, error) {
	h, err := base.WithPayload(payloadSize)
	if err != nil {
		return nil, err
	}
	return h.Bytes(), nil
}
