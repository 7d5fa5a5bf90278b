package wave

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header
	HeaderSize = 44
	// ChunkSizeOffset is the number of header bytes not counted by the RIFF chunk size
	// field beyond the data payload: "WAVE" (4) + fmt sub-chunk (8 + 16) + data tag and size (8)
	ChunkSizeOffset = 36
	// MaxPayloadSize is the largest payload whose chunk size still fits in a uint32
	MaxPayloadSize = 0xFFFFFFFF - ChunkSizeOffset
)

// Byte offsets of the header fields
const (
	offChunkID       = 0
	offChunkSize     = 4
	offFormat        = 8
	offSubchunk1ID   = 12
	offSubchunk1Size = 16
	offAudioFormat   = 20
	offNumChannels   = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offSubchunk2ID   = 36
	offSubchunk2Size = 40
)
