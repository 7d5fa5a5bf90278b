package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lolocompany/wave-splitter/pkg/wave"
	"github.com/stretchr/testify/require"
)

// testHeader returns a mono 16-bit 8kHz PCM header declaring dataSize payload bytes
func testHeader(dataSize uint32) wave.Header {
	return wave.Header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     dataSize + wave.ChunkSizeOffset,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    8000,
		ByteRate:      16000,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
}

// testPayload returns n bytes where every byte position is distinguishable within a 251-byte window
func testPayload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

// testWave returns a full file image: header followed by payload
func testWave(payload []byte) []byte {
	return append(testHeader(uint32(len(payload))).Bytes(), payload...)
}

// writeWaveFile writes a WAVE file with the given payload into dir and returns its path
func writeWaveFile(t *testing.T, dir string, payload []byte) string {
	t.Helper()
	path := filepath.Join(dir, "input.wav")
	require.NoError(t, os.WriteFile(path, testWave(payload), 0600))
	return path
}

// readWaveFile reads a produced file and splits it into header and payload
func readWaveFile(t *testing.T, path string) (wave.Header, []byte) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	h, err := wave.Parse(data)
	require.NoError(t, err)
	return h, data[wave.HeaderSize:]
}
