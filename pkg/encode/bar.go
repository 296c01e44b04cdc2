package encode

import (
	"strconv"

	"github.com/charturl/charturl/pkg/chart"
)

// barKind encodes bar charts. On top of the shared fragments it emits the
// zero-point parameter when bars go negative and the bar-geometry
// parameter when a BarStyle is set.
type barKind struct{ baseKind }

func (barKind) typeParams(st *encodeState) params {
	c := st.chart.(*chart.BarChart)
	var code string
	switch {
	case c.Vertical && !c.Stacked:
		code = "bvg"
	case c.Vertical && c.Stacked:
		code = "bvs"
	case !c.Vertical && !c.Stacked:
		code = "bhg"
	default:
		code = "bhs"
	}
	return params{"chart_type": code}
}

// axisLabels reverses the left axis of horizontal charts. The server
// draws that axis bottom-up while bars stack top-down, so without the
// reversal the labels read against the bars.
func (barKind) axisLabels(st *encodeState, code chart.Position, axis *chart.Axis) ([]string, []float64) {
	c := st.chart.(*chart.BarChart)
	if c.Vertical || axis != c.Left() {
		return axis.Labels, axis.LabelPositions
	}
	labels := make([]string, len(axis.Labels))
	for i, l := range axis.Labels {
		labels[len(labels)-1-i] = l
	}
	positions := make([]float64, len(axis.LabelPositions))
	for i, p := range axis.LabelPositions {
		positions[len(positions)-1-i] = p
	}
	return labels, positions
}

func (barKind) tailParams(st *encodeState) ([]params, error) {
	zero := zeroPointParams(st)
	geometry := barGeometryParams(st)
	return []params{zero, geometry}, nil
}

// zeroPointParams anchors the bar baseline when any bar is negative, so
// negative bars hang below the axis instead of being clipped at it.
func zeroPointParams(st *encodeState) params {
	dep := st.chart.DependentAxis()
	if !dep.HasRange() || *dep.Min >= 0 {
		return nil
	}
	if *dep.Max < 0 {
		return params{"extra": "1"}
	}
	return params{"extra": formatFloat(-*dep.Min / (*dep.Max - *dep.Min))}
}

// barGeometryParams derives the bar_height spec from the style and the
// pixel span. A missing gap is derived from the other one; a missing
// thickness is computed so the bars fill the span.
func barGeometryParams(st *encodeState) params {
	c := st.chart.(*chart.BarChart)
	style := st.enc.BarStyle
	if style == nil || len(c.Data) == 0 {
		return nil
	}
	if style.Thickness == nil && style.BarGap == nil && style.GroupGap == nil {
		return nil
	}

	barGap := style.BarGap
	groupGap := style.GroupGap
	if barGap == nil && groupGap != nil {
		barGap = chart.Int(max(0, *groupGap/2))
	}
	if groupGap == nil && barGap != nil {
		groupGap = chart.Int(*barGap * 2)
	}

	thickness := style.Thickness
	if thickness == nil {
		space := st.width
		if !c.Vertical {
			space = st.height
		}
		var numBars int
		for _, s := range c.Data {
			if c.Stacked {
				numBars = max(numBars, len(s.Points))
			} else {
				numBars += len(s.Points)
			}
		}
		if numBars == 0 {
			return nil
		}
		var t int
		if c.Stacked {
			t = (space - *barGap*(numBars-1)) / numBars
		} else {
			numGroups := len(c.Data)
			left := space - *barGap*(numBars-numGroups) - *groupGap*(numGroups-1)
			t = left / numBars
		}
		thickness = chart.Int(max(1, t))
	}

	spec := []string{strconv.Itoa(*thickness)}
	if barGap != nil {
		spec = append(spec, strconv.Itoa(*barGap))
		if groupGap != nil && !c.Stacked {
			spec = append(spec, strconv.Itoa(*groupGap))
		}
	}
	return params{"bar_height": joined("bar_height", spec)}
}
