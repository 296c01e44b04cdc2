package chart

// Axis describes one edge of the plot area.
//
// Min and Max are optional but must be set together by encode time; the
// encoder rejects a half-set range. GridSpacing is in axis units and
// requires an explicit range. LabelGridlines requests full-span tick
// marks through the labels.
type Axis struct {
	Min            *float64
	Max            *float64
	Labels         []string
	LabelPositions []float64
	GridSpacing    float64 // 0 = no grid lines for this axis
	LabelGridlines bool
}

// NewAxis creates an axis with no explicit range.
func NewAxis() *Axis { return &Axis{} }

// NewAxisRange creates an axis spanning [min, max].
func NewAxisRange(min, max float64) *Axis {
	a := &Axis{}
	a.SetRange(min, max)
	return a
}

// SetRange sets both bounds at once, preserving the set-together invariant.
func (a *Axis) SetRange(min, max float64) {
	a.Min = Float(min)
	a.Max = Float(max)
}

// HasRange reports whether both bounds are set.
func (a *Axis) HasRange() bool { return a.Min != nil && a.Max != nil }

// clone returns a deep copy of the axis.
func (a *Axis) clone() *Axis {
	cp := *a
	if a.Min != nil {
		cp.Min = Float(*a.Min)
	}
	if a.Max != nil {
		cp.Max = Float(*a.Max)
	}
	cp.Labels = append([]string(nil), a.Labels...)
	cp.LabelPositions = append([]float64(nil), a.LabelPositions...)
	return &cp
}
