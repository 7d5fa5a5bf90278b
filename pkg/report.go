package pkg

import (
	"fmt"
	"io"

	"github.com/lolocompany/wave-splitter/pkg/wave"
)

// Reporter receives diagnostics at fixed points of a run. It never influences the bytes produced.
type Reporter interface {
	// HeaderParsed is called once the source header has been read
	HeaderParsed(path string, header wave.Header)
	// Planned is called once the segment plan is known
	Planned(plan SegmentPlan)
	// Writing is called before an output file is created, with the header it will carry
	Writing(name string, header wave.Header)
}

// LogReporter prints a human-readable trace of a run
type LogReporter struct {
	w    io.Writer
	last *wave.Header
}

// NewLogReporter creates a reporter writing to w
func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{w: w}
}

// HeaderParsed prints the source header fields
func (r *LogReporter) HeaderParsed(path string, header wave.Header) {
	fmt.Fprintf(r.w, "Wave file to parse: %s\n\n", path)
	fmt.Fprintln(r.w, "Input file RIFF/WAVE header information:")
	wave.Describe(header).WriteText(r.w)
}

// Planned prints the plan figures
func (r *LogReporter) Planned(plan SegmentPlan) {
	fmt.Fprintf(r.w, "\nFull wave data size: %d\n", plan.TotalBytes)
	fmt.Fprintf(r.w, "Section size: %d\n", plan.SegmentBytes)
	if rem := plan.Remainder(); rem > 0 {
		fmt.Fprintf(r.w, "Dropped trailing bytes: %d\n", rem)
	}
	fmt.Fprintln(r.w)
}

// Writing prints the output header whenever it differs from the previous file's, then the file name
func (r *LogReporter) Writing(name string, header wave.Header) {
	if r.last == nil || *r.last != header {
		fmt.Fprintln(r.w, "Output file RIFF/WAVE header information:")
		wave.Describe(header).WriteText(r.w)
		r.last = &header
	}
	fmt.Fprintf(r.w, "Creating output file %s\n", name)
}

type nopReporter struct{}

func (nopReporter) HeaderParsed(string, wave.Header) {}
func (nopReporter) Planned(SegmentPlan)              {}
func (nopReporter) Writing(string, wave.Header)      {}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}
	return r
}
