package wave

import (
	"fmt"
	"io"
	"strings"
)

// Description is a flat, printable view of a Header
type Description struct {
	ChunkID       string `json:"chunkId" yaml:"chunk_id"`
	ChunkSize     uint32 `json:"chunkSize" yaml:"chunk_size"`
	Format        string `json:"format" yaml:"format"`
	Subchunk1ID   string `json:"subchunk1Id" yaml:"subchunk1_id"`
	Subchunk1Size uint32 `json:"subchunk1Size" yaml:"subchunk1_size"`
	AudioFormat   uint16 `json:"audioFormat" yaml:"audio_format"`
	NumChannels   uint16 `json:"numChannels" yaml:"num_channels"`
	SampleRate    uint32 `json:"sampleRate" yaml:"sample_rate"`
	ByteRate      uint32 `json:"byteRate" yaml:"byte_rate"`
	BlockAlign    uint16 `json:"blockAlign" yaml:"block_align"`
	BitsPerSample uint16 `json:"bitsPerSample" yaml:"bits_per_sample"`
	Subchunk2ID   string `json:"subchunk2Id" yaml:"subchunk2_id"`
	Subchunk2Size uint32 `json:"subchunk2Size" yaml:"subchunk2_size"`
}

// Describe extracts the header fields into a Description
func Describe(h Header) Description {
	return Description{
		ChunkID:       tagString(h.ChunkID),
		ChunkSize:     h.ChunkSize,
		Format:        tagString(h.Format),
		Subchunk1ID:   tagString(h.Subchunk1ID),
		Subchunk1Size: h.Subchunk1Size,
		AudioFormat:   h.AudioFormat,
		NumChannels:   h.NumChannels,
		SampleRate:    h.SampleRate,
		ByteRate:      h.ByteRate,
		BlockAlign:    h.BlockAlign,
		BitsPerSample: h.BitsPerSample,
		Subchunk2ID:   tagString(h.Subchunk2ID),
		Subchunk2Size: h.Subchunk2Size,
	}
}

// Fields returns the label/value pairs of the report in header order
func (d Description) Fields() [][2]string {
	return [][2]string{
		{"Chunk ID", d.ChunkID},
		{"Chunk Size", fmt.Sprint(d.ChunkSize)},
		{"Format", d.Format},
		{"Subchunk 1 ID", d.Subchunk1ID},
		{"Subchunk 1 size", fmt.Sprint(d.Subchunk1Size)},
		{"Audio format", fmt.Sprint(d.AudioFormat)},
		{"Number of channels", fmt.Sprint(d.NumChannels)},
		{"Sample rate", fmt.Sprint(d.SampleRate)},
		{"Byte rate", fmt.Sprint(d.ByteRate)},
		{"Block align", fmt.Sprint(d.BlockAlign)},
		{"Bits per sample", fmt.Sprint(d.BitsPerSample)},
		{"Subchunk 2 ID", d.Subchunk2ID},
		{"Subchunk 2 size", fmt.Sprint(d.Subchunk2Size)},
	}
}

// WriteText writes the human-readable report, one "label: value" line per field
func (d Description) WriteText(w io.Writer) error {
	for _, f := range d.Fields() {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", f[0]+":", f[1]); err != nil {
			return err
		}
	}
	return nil
}

// tagString renders a 4-byte tag, escaping bytes outside printable ASCII
func tagString(tag [4]byte) string {
	var sb strings.Builder
	for _, c := range tag {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return sb.String()
}
