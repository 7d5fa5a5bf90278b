package pkg

import "fmt"

// SegmentPlan describes how the payload of a source file is cut into equal segments
type SegmentPlan struct {
	TotalBytes   uint32 `json:"totalBytes" yaml:"total_bytes"`
	Count        uint32 `json:"count" yaml:"count"`
	SegmentBytes uint32 `json:"segmentBytes" yaml:"segment_bytes"`
}

// Plan splits totalDataBytes into count segments of floor(totalDataBytes/count) bytes.
// Bytes left over by the division are never written to any output.
func Plan(totalDataBytes, count uint32) (SegmentPlan, error) {
	if count == 0 {
		return SegmentPlan{}, fmt.Errorf("%w: got 0", ErrInvalidCount)
	}
	return SegmentPlan{
		TotalBytes:   totalDataBytes,
		Count:        count,
		SegmentBytes: totalDataBytes / count,
	}, nil
}

// Remainder returns the number of trailing payload bytes dropped by the plan
func (p SegmentPlan) Remainder() uint32 {
	return p.TotalBytes - p.Count*p.SegmentBytes
}

// Offset returns the closed-form source offset of segment i for a payload starting at dataStart
func (p SegmentPlan) Offset(dataStart int64, i int) int64 {
	return dataStart + int64(i)*int64(p.SegmentBytes)
}

// OffsetTable holds the source offset at which each segment's read began, indexed by segment
type OffsetTable []int64
