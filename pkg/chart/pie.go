package chart

import (
	"github.com/charturl/charturl/pkg/errors"
)

// =============================================================================
// Segment
// =============================================================================

// Segment is one slice of a pie. It is a Series holding exactly one sample,
// the segment size, which must never go negative.
type Segment struct {
	Series
}

// NewSegment creates a pie segment. Size must be non-negative.
func NewSegment(size float64, color, label string) (*Segment, error) {
	seg := &Segment{Series: Series{Points: []float64{0}, Color: color, Label: label}}
	if err := seg.SetSize(size); err != nil {
		return nil, err
	}
	return seg, nil
}

// Size returns the segment size.
func (s *Segment) Size() float64 { return s.Points[0] }

// SetSize updates the segment size, rejecting negative values.
func (s *Segment) SetSize(size float64) error {
	if size < 0 {
		return errors.New(errors.ErrCodeInvalidSegment,
			"segment size must be non-negative, got %g", size)
	}
	s.Points[0] = size
	return nil
}

// =============================================================================
// PieChart
// =============================================================================

// PieChart draws one segment per sample. Pie charts install no formatter
// pipeline; colors and labels are emitted only when set explicitly.
type PieChart struct {
	BaseChart
}

// NewPieChart creates an empty pie chart.
func NewPieChart() *PieChart {
	return &PieChart{BaseChart: newBaseChart()}
}

// AddSegment appends a segment and returns it.
func (c *PieChart) AddSegment(seg *Segment) *Segment {
	c.AddSeries(&seg.Series)
	return seg
}

// AddSegments appends one segment per point. labels must match points
// one-to-one; colors may be shorter and covers a prefix of the segments.
func (c *PieChart) AddSegments(points []float64, labels, colors []string) error {
	if len(labels) != len(points) {
		return errors.New(errors.ErrCodeInvalidInput,
			"%d labels for %d points", len(labels), len(points))
	}
	if len(colors) > len(points) {
		return errors.New(errors.ErrCodeInvalidInput,
			"%d colors for %d points", len(colors), len(points))
	}
	for i, p := range points {
		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		seg, err := NewSegment(p, color, labels[i])
		if err != nil {
			return err
		}
		c.AddSegment(seg)
	}
	return nil
}

// SetColors assigns colors to the existing segments in order, clearing the
// color of any segment beyond the given list.
func (c *PieChart) SetColors(colors ...string) error {
	if len(colors) > len(c.Data) {
		return errors.New(errors.ErrCodeInvalidInput,
			"%d colors for %d segments", len(colors), len(c.Data))
	}
	for i, s := range c.Data {
		if i < len(colors) {
			s.Color = colors[i]
		} else {
			s.Color = ""
		}
	}
	return nil
}

// DependentAxis returns the left axis. Pie charts have no visible axes but
// the data scale still anchors at zero on this one.
func (c *PieChart) DependentAxis() *Axis { return c.Left() }

// IndependentAxis returns the bottom axis.
func (c *PieChart) IndependentAxis() *Axis { return c.Bottom() }

// Clone returns a deep copy.
func (c *PieChart) Clone() Chart {
	cp := &PieChart{}
	c.cloneInto(&cp.BaseChart)
	return cp
}
