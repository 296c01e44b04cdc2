package chart

import (
	"cmp"
	"slices"
)

// =============================================================================
// Formatter
// =============================================================================

// Formatter is one step of the encode-time pipeline. Formatters run in
// order against a deep copy of the chart, so they may mutate freely.
// Instances carry configuration only, never per-chart state, which keeps
// them safe to share across charts and goroutines.
type Formatter interface {
	Format(c Chart)
}

// =============================================================================
// AutoColor
// =============================================================================

// AutoColor assigns a color to every series that has none, cycling through
// its palette. Series with an explicit color are skipped and do not
// advance the cycle.
type AutoColor struct {
	Colors []string
}

// NewAutoColor creates the formatter with the default palette.
func NewAutoColor() *AutoColor {
	return &AutoColor{Colors: []string{"0000ff", "ff0000", "00dd00", "000000"}}
}

func (f *AutoColor) Format(c Chart) {
	if len(f.Colors) == 0 {
		return
	}
	index := 0
	for _, s := range c.Base().Data {
		if s.Color != "" {
			continue
		}
		s.Color = f.Colors[index%len(f.Colors)]
		index++
	}
}

// =============================================================================
// AutoLegend
// =============================================================================

// AutoLegend shows a legend when at least one series is labeled. Unlabeled
// series get an empty legend entry so the entries line up with the series
// order.
type AutoLegend struct{}

func (f *AutoLegend) Format(c Chart) {
	base := c.Base()
	base.HideLegend()
	labels := make([]string, len(base.Data))
	any := false
	for i, s := range base.Data {
		labels[i] = s.Label
		if s.Label != "" {
			any = true
		}
	}
	if any {
		base.SetLegend(labels)
	}
}

// =============================================================================
// AutoScale
// =============================================================================

// AutoScale fills in missing bounds on every dependent axis from the data
// bounds, padded by Buffer (a fraction of the data span) so lines do not
// touch the chart border. Bounds the caller set explicitly are kept.
type AutoScale struct {
	Buffer float64
}

// NewAutoScale creates the formatter with a 5% buffer.
func NewAutoScale() *AutoScale {
	return &AutoScale{Buffer: 0.05}
}

func (f *AutoScale) Format(c Chart) {
	min, max, ok := c.MinMax()
	if !ok {
		return
	}
	buffer := (max - min) * f.Buffer
	for _, axis := range c.DependentAxes() {
		if axis.Min == nil {
			axis.Min = Float(min - buffer)
		}
		if axis.Max == nil {
			axis.Max = Float(max + buffer)
		}
	}
}

// =============================================================================
// LabelSeparator
// =============================================================================

// LabelSeparator pushes axis labels apart until neighbors sit at least the
// configured spacing from each other, in axis units. A spacing of zero
// leaves that axis alone. Labels are repositioned, never dropped; when the
// axis range cannot fit them all at the requested spacing, the spacing
// shrinks to what the range allows.
type LabelSeparator struct {
	Left   float64
	Right  float64
	Bottom float64
}

func (f *LabelSeparator) Format(c Chart) {
	base := c.Base()
	f.adjust(base.Left(), f.Left)
	f.adjust(base.Right(), f.Right)
	f.adjust(base.Bottom(), f.Bottom)
}

func (f *LabelSeparator) adjust(axis *Axis, spacing float64) {
	if spacing <= 0 || len(axis.Labels) <= 1 {
		return
	}
	if len(axis.Labels) != len(axis.LabelPositions) {
		return
	}
	if axis.HasRange() {
		most := (*axis.Max - *axis.Min) / float64(len(axis.Labels)-1)
		if spacing > most {
			spacing = most
		}
	}

	type entry struct {
		pos   float64
		label string
	}
	entries := make([]entry, len(axis.Labels))
	for i := range axis.Labels {
		entries[i] = entry{pos: axis.LabelPositions[i], label: axis.Labels[i]}
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.pos, a.pos); c != 0 {
			return c
		}
		return cmp.Compare(b.label, a.label)
	})

	// Walk down from the top label, pushing collisions downward.
	for i := 1; i < len(entries); i++ {
		if entries[i-1].pos-entries[i].pos < spacing {
			pos := entries[i-1].pos - spacing
			if axis.Min != nil && pos < *axis.Min {
				pos = *axis.Min
			}
			entries[i].pos = pos
		}
	}

	// Walk up from the bottom label, pushing collisions upward.
	for i := len(entries) - 2; i >= 0; i-- {
		if entries[i].pos-entries[i+1].pos < spacing {
			pos := entries[i+1].pos + spacing
			if axis.Max != nil && pos > *axis.Max {
				pos = *axis.Max
			}
			entries[i].pos = pos
		}
	}

	for i, e := range entries {
		axis.LabelPositions[i] = e.pos
		axis.Labels[i] = e.label
	}
}

// =============================================================================
// InlineLegend
// =============================================================================

// InlineLegend labels each line at its right end instead of in a legend
// box. It mirrors the left axis range onto the right axis, places each
// series label at the series' final sample, and suppresses the legend.
type InlineLegend struct{}

func (f *InlineLegend) Format(c Chart) {
	base := c.Base()
	var labels []string
	var positions []float64
	for _, s := range base.Data {
		if len(s.Points) == 0 {
			continue
		}
		labels = append(labels, s.Label)
		positions = append(positions, s.Points[len(s.Points)-1])
	}
	right := base.Right()
	left := base.Left()
	right.Min = nil
	right.Max = nil
	if left.Min != nil {
		right.Min = Float(*left.Min)
	}
	if left.Max != nil {
		right.Max = Float(*left.Max)
	}
	right.Labels = labels
	right.LabelPositions = positions
	base.HideLegend()
}
