package minutes

import "time"

// AudioSegment is one contiguous slice of an original recording, sized to
// fit provider limits. Index defines processing order and is preserved
// through dispatch and merge.
type AudioSegment struct {
	Index     int
	Path      string
	SizeBytes int64
	Duration  time.Duration
}

// PartialSummary is the structured text produced by analyzing one segment.
type PartialSummary struct {
	Index int
	Text  string
}

// Document is the final five-section minutes document.
type Document struct {
	Title string
	Text  string
}
