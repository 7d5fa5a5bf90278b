package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format is an output format for structured command results
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses the --format value. An empty value defaults to table on a terminal and json otherwise.
func ParseFormat(s string, isTTY bool) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if isTTY {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected table, json or yaml)", s)
	}
}

// IsTTY reports whether f is attached to a terminal
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Encoder writes results in one format
type Encoder struct {
	format Format
	w      io.Writer
}

// NewEncoder creates an encoder for format writing to w
func NewEncoder(format Format, w io.Writer) *Encoder {
	return &Encoder{format: format, w: w}
}

// Format returns the encoder's format
func (e *Encoder) Format() Format {
	return e.format
}

// Encode writes a single value. Table format falls back to indented JSON.
func (e *Encoder) Encode(v any) error {
	switch e.format {
	case FormatYAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(e.w)
		if e.format == FormatTable {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	}
}

// EncodeTable writes aligned columns under upper-case headers
func (e *Encoder) EncodeTable(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(e.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// EncodeSlice writes items as one JSON object per line, or as a YAML sequence
func EncodeSlice[T any](enc *Encoder, items []T) error {
	if enc.format == FormatYAML {
		return enc.Encode(items)
	}
	jsonEnc := json.NewEncoder(enc.w)
	for _, item := range items {
		if err := jsonEnc.Encode(item); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	}
	return nil
}
