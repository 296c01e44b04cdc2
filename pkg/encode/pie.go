package encode

import (
	"github.com/charturl/charturl/pkg/chart"
)

// pieKind encodes pie charts. Segment sizes are scaled against the
// largest segment rather than an axis range, and labels ride in the chl
// parameter instead of a legend.
type pieKind struct{ baseKind }

func (pieKind) typeParams(st *encodeState) params {
	if st.enc.ThreeD {
		return params{"chart_type": "p3"}
	}
	return params{"chart_type": "p"}
}

func (pieKind) dataParams(st *encodeState) (params, error) {
	var (
		points []float64
		labels []string
		colors []string
	)
	for _, s := range st.chart.Base().Data {
		if len(s.Points) == 0 {
			continue
		}
		points = append(points, s.Points[0])
		if s.Label != "" {
			labels = append(labels, s.Label)
		} else {
			labels = append(labels, "_")
		}
		if s.Color != "" {
			colors = append(colors, s.Color)
		}
	}

	maxVal := 1.0
	if len(points) > 0 {
		maxVal = points[0]
		for _, p := range points[1:] {
			if p > maxVal {
				maxVal = p
			}
		}
	}
	p, err := encodeData(st, [][]float64{points}, chart.Float(0), chart.Float(maxVal))
	if err != nil {
		return nil, err
	}
	if len(colors) > 0 {
		p["color"] = joined("color", colors)
	}
	if len(labels) > 0 {
		p["label"] = joined("label", labels)
	}
	return p, nil
}
