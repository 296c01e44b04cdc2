package chart

import (
	"math"
	"slices"
)

// =============================================================================
// BarStyle
// =============================================================================

// Default gaps applied by NewBarStyle, in pixels.
const (
	DefaultBarGap   = 4
	DefaultGroupGap = 8
)

// BarStyle controls bar geometry. Every field is optional; unset fields
// are derived from the set ones or from the available pixel span at
// encode time (see the bar_height parameter rules).
type BarStyle struct {
	Thickness *int // bar thickness in pixels
	BarGap    *int // gap between bars within a group
	GroupGap  *int // gap between groups of bars
}

// NewBarStyle creates a style with an explicit thickness and the default
// bar and group gaps.
func NewBarStyle(thickness int) *BarStyle {
	return &BarStyle{
		Thickness: Int(thickness),
		BarGap:    Int(DefaultBarGap),
		GroupGap:  Int(DefaultGroupGap),
	}
}

// =============================================================================
// BarChart
// =============================================================================

// BarChart draws one bar per sample. Orientation and stacking select the
// chart type code and which axis carries the data scale.
type BarChart struct {
	BaseChart
	Vertical bool
	Stacked  bool
}

// NewBarChart creates an empty vertical grouped bar chart with the
// default formatter pipeline.
func NewBarChart() *BarChart {
	c := &BarChart{BaseChart: newBaseChart(), Vertical: true}
	c.installDefaultFormatters()
	return c
}

// AddBars appends a series of bars and returns it for further styling.
func (c *BarChart) AddBars(points []float64) *Series {
	return c.AddSeries(NewSeries(points))
}

// DependentAxis returns the axis carrying the data scale: left for
// vertical bars, bottom for horizontal ones.
func (c *BarChart) DependentAxis() *Axis {
	if c.Vertical {
		return c.Left()
	}
	return c.Bottom()
}

// IndependentAxis returns the category axis.
func (c *BarChart) IndependentAxis() *Axis {
	if c.Vertical {
		return c.Bottom()
	}
	return c.Left()
}

// DependentAxes returns every axis on the data-scale orientation.
func (c *BarChart) DependentAxes() []*Axis {
	if c.Vertical {
		return c.axesAt(Left, Right)
	}
	return c.axesAt(Top, Bottom)
}

// IndependentAxes returns every axis on the category orientation.
func (c *BarChart) IndependentAxes() []*Axis {
	if c.Vertical {
		return c.axesAt(Top, Bottom)
	}
	return c.axesAt(Left, Right)
}

// MinMax returns the data bounds. For stacked charts the bounds come from
// the per-index sums of positive and negative samples, since that is what
// the rendered bars span.
func (c *BarChart) MinMax() (min, max float64, ok bool) {
	if !c.Stacked {
		return c.BaseChart.MinMax()
	}
	if len(c.Data) == 0 {
		return 0, 0, false
	}
	numBars := 0
	for _, s := range c.Data {
		if len(s.Points) > numBars {
			numBars = len(s.Points)
		}
	}
	if numBars == 0 {
		return 0, 0, false
	}
	positives := make([]float64, numBars)
	negatives := make([]float64, numBars)
	for _, s := range c.Data {
		for i, p := range s.Points {
			switch {
			case IsGap(p):
			case p > 0:
				positives[i] += p
			default:
				negatives[i] += p
			}
		}
	}
	min = math.Min(slices.Min(positives), slices.Min(negatives))
	max = math.Max(slices.Max(positives), slices.Max(negatives))
	return min, max, true
}

// Clone returns a deep copy.
func (c *BarChart) Clone() Chart {
	cp := &BarChart{Vertical: c.Vertical, Stacked: c.Stacked}
	c.cloneInto(&cp.BaseChart)
	return cp
}
