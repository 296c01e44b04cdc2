package chart

import "math"

// =============================================================================
// Samples
// =============================================================================

// Gap returns the sample value that marks a missing data point.
func Gap() float64 { return math.NaN() }

// IsGap reports whether a sample is a missing data point.
func IsGap(v float64) bool { return math.IsNaN(v) }

// =============================================================================
// Helpers for optional fields
// =============================================================================

// Float returns a pointer to v, for optional float fields like Axis.Min.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for optional int fields like BarStyle.Thickness.
func Int(v int) *int { return &v }

// =============================================================================
// LineStyle
// =============================================================================

// LineStyle describes how a line is drawn: stroke width plus the lengths
// of the drawn and skipped parts of the dash pattern, in pixels.
// Off == 0 draws a solid line.
type LineStyle struct {
	Width int
	On    int
	Off   int
}

// Preset line styles.
var (
	LineSolid       = LineStyle{Width: 1, On: 1, Off: 0}
	LineDashed      = LineStyle{Width: 1, On: 8, Off: 4}
	LineThickSolid  = LineStyle{Width: 2, On: 1, Off: 0}
	LineThickDashed = LineStyle{Width: 2, On: 8, Off: 4}
)

// =============================================================================
// Marker
// =============================================================================

// Marker is a shape drawn on top of a data point.
type Marker struct {
	Shape string // marker shape code, e.g. "o", "x", "v"
	Color string // hex color without '#'
	Size  float64
}

// SeriesMarker attaches a Marker to a data point by index.
type SeriesMarker struct {
	Index  int
	Marker Marker
}

// =============================================================================
// Series
// =============================================================================

// Series is one ordered sequence of samples plus its presentation.
// Color, Label, and Style are optional; empty/nil means unset and lets a
// formatter or the server fill in a default.
type Series struct {
	Points  []float64 // NaN marks a gap
	Color   string    // hex color without '#'
	Label   string    // legend label; "" = unlabeled
	Style   *LineStyle
	Markers []SeriesMarker
}

// NewSeries creates a series over the given samples. The slice is retained,
// not copied, so callers may keep appending points until encode time.
func NewSeries(points []float64) *Series {
	return &Series{Points: points}
}

// AddMarker attaches a marker to the point at the given index.
func (s *Series) AddMarker(index int, m Marker) *Series {
	s.Markers = append(s.Markers, SeriesMarker{Index: index, Marker: m})
	return s
}

// clone returns a deep copy of the series.
func (s *Series) clone() *Series {
	cp := *s
	cp.Points = append([]float64(nil), s.Points...)
	cp.Markers = append([]SeriesMarker(nil), s.Markers...)
	if s.Style != nil {
		style := *s.Style
		cp.Style = &style
	}
	return &cp
}
