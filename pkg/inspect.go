package pkg

import (
	"fmt"

	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// InspectOutput describes a WAVE file header and whether its size fields agree with the file
type InspectOutput struct {
	File              string           `json:"file" yaml:"file"`
	FileSize          int64            `json:"fileSize" yaml:"file_size"`
	Header            wave.Description `json:"header" yaml:"header"`
	PayloadBytes      int64            `json:"payloadBytes" yaml:"payload_bytes"`
	ChunkSizeMatches  bool             `json:"chunkSizeMatches" yaml:"chunk_size_matches"`
	DataSizeMatches   bool             `json:"dataSizeMatches" yaml:"data_size_matches"`
	ExpectedChunkSize uint64           `json:"expectedChunkSize" yaml:"expected_chunk_size"`
}

// Inspect reads the header of the file at path.
// Mismatching size fields are reported, not treated as errors.
func Inspect(path string) (*InspectOutput, error) {
	source, err := wave.OpenSource(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputOpen, path, err)
	}
	defer source.Close()

	header, err := wave.ReadHeader(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputOpen, path, err)
	}

	payload := source.Size() - wave.HeaderSize
	expected := uint64(header.Subchunk2Size) + wave.ChunkSizeOffset
	return &InspectOutput{
		File:              path,
		FileSize:          source.Size(),
		Header:            wave.Describe(header),
		PayloadBytes:      payload,
		ChunkSizeMatches:  uint64(header.ChunkSize) == expected,
		DataSizeMatches:   int64(header.Subchunk2Size) == payload,
		ExpectedChunkSize: expected,
	}, nil
}
