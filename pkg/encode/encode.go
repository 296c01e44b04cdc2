package encode

import (
	"fmt"
	"strconv"

	"github.com/charturl/charturl/pkg/chart"
	"github.com/charturl/charturl/pkg/errors"
)

// GoogleChartURL is the default chart server.
const GoogleChartURL = "http://chart.apis.google.com/chart"

// =============================================================================
// Encoder
// =============================================================================

// Encoder renders a chart as Google Chart API parameters. The zero fields
// give sensible defaults; callers tweak them before calling Params, URL,
// or Img. One Encoder may serve concurrent calls as long as the fields
// are not mutated concurrently.
type Encoder struct {
	// BaseURL is the chart server endpoint.
	BaseURL string

	// Extra adds or overrides parameters verbatim. Keys may use long or
	// wire names; values are not joined or escaped beyond normal URL
	// escaping.
	Extra map[string]string

	// Enhanced selects the two-symbol data codec (4096 steps instead
	// of 62).
	Enhanced bool

	// Plain disables percent-escaping of parameter values, which makes
	// the URL easier to read while debugging.
	Plain bool

	// BarStyle sizes bars and gaps. Only bar encoders read it.
	BarStyle *chart.BarStyle

	// ThreeD draws the pie with a 3D effect. Only pie encoders read it.
	ThreeD bool

	chart chart.Chart
	hooks kindHooks
}

// kindHooks is the fixed set of variation points between chart kinds.
// Everything else about the parameter layout is shared.
type kindHooks interface {
	typeParams(st *encodeState) params
	dataParams(st *encodeState) (params, error)
	axisLabels(st *encodeState, code chart.Position, axis *chart.Axis) ([]string, []float64)
	tailParams(st *encodeState) ([]params, error)
}

// encodeState carries one Params call's inputs so that concurrent calls
// on a shared Encoder do not race.
type encodeState struct {
	enc    *Encoder
	chart  chart.Chart
	width  int
	height int
}

func newEncoder(c chart.Chart, hooks kindHooks) *Encoder {
	return &Encoder{BaseURL: GoogleChartURL, chart: c, hooks: hooks}
}

// NewLine creates an encoder for a line chart.
func NewLine(c *chart.LineChart) *Encoder { return newEncoder(c, lineKind{}) }

// NewSparkline creates an encoder for a sparkline.
func NewSparkline(c *chart.Sparkline) *Encoder { return newEncoder(c, sparklineKind{}) }

// NewBar creates an encoder for a bar chart.
func NewBar(c *chart.BarChart) *Encoder { return newEncoder(c, barKind{}) }

// NewPie creates an encoder for a pie chart.
func NewPie(c *chart.PieChart) *Encoder { return newEncoder(c, pieKind{}) }

// codec returns the data codec selected by Enhanced.
func (e *Encoder) codec() codec {
	if e.Enhanced {
		return enhancedCodec{}
	}
	return simpleCodec{}
}

// =============================================================================
// Parameter assembly
// =============================================================================

// Params returns the wire parameters for a rendering of the given pixel
// size. The chart's formatter pipeline runs against a deep copy first, so
// the chart itself is left untouched.
func (e *Encoder) Params(width, height int) (map[string]string, error) {
	if err := errors.ValidateSize(width, height); err != nil {
		return nil, err
	}
	c := e.chart.Clone()
	for _, f := range c.Base().Formatters {
		f.Format(c)
	}
	st := &encodeState{enc: e, chart: c, width: width, height: height}

	fragments := []func(*encodeState) (params, error){
		legendParams,
		e.hooks.dataParams,
		axisParams,
		gridParams,
		func(st *encodeState) (params, error) { return e.hooks.typeParams(st), nil },
		extraParams,
		sizeParams,
	}
	out := make(map[string]string)
	merge := func(p params) error {
		short, err := shortenNames(p)
		if err != nil {
			return err
		}
		for k, v := range short {
			out[k] = v
		}
		return nil
	}
	for _, fragment := range fragments {
		p, err := fragment(st)
		if err != nil {
			return nil, err
		}
		if err := merge(p); err != nil {
			return nil, err
		}
	}
	tail, err := e.hooks.tailParams(st)
	if err != nil {
		return nil, err
	}
	for _, p := range tail {
		if err := merge(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// =============================================================================
// Shared fragments
// =============================================================================

func legendParams(st *encodeState) (params, error) {
	base := st.chart.Base()
	if !base.ShowLegend() {
		return nil, nil
	}
	return params{"data_series_label": joined("data_series_label", base.LegendLabels())}, nil
}

func extraParams(st *encodeState) (params, error) {
	p := make(params, len(st.enc.Extra))
	for k, v := range st.enc.Extra {
		p[k] = v
	}
	return p, nil
}

func sizeParams(st *encodeState) (params, error) {
	return params{"size": fmt.Sprintf("%dx%d", st.width, st.height)}, nil
}

func axisParams(st *encodeState) (params, error) {
	var (
		types     []string
		ranges    []string
		labels    []string
		positions []string
		tickMarks []string
	)
	markLength := max(st.width, st.height)
	i := 0
	for _, pa := range st.chart.Base().Axes() {
		axis := pa.Axis
		if len(axis.Labels) == 0 {
			continue
		}
		types = append(types, string(pa.Code))
		if axis.Min != nil || axis.Max != nil {
			if !axis.HasRange() {
				return nil, errors.New(errors.ErrCodeInvalidRange,
					"axis %q has only one bound set", pa.Code)
			}
			ranges = append(ranges, fmt.Sprintf("%d,%s,%s",
				i, formatFloat(*axis.Min), formatFloat(*axis.Max)))
		}
		axisLabels, labelPositions := st.enc.hooks.axisLabels(st, pa.Code, axis)
		if len(axisLabels) > 0 {
			labels = append(labels, fmt.Sprintf("%d:", i))
			labels = append(labels, axisLabels...)
		}
		if len(labelPositions) > 0 {
			entry := make([]string, 0, len(labelPositions)+1)
			entry = append(entry, strconv.Itoa(i))
			for _, p := range labelPositions {
				entry = append(entry, formatFloat(p))
			}
			positions = append(positions, joined("data", entry))
		}
		if axis.LabelGridlines {
			tickMarks = append(tickMarks, fmt.Sprintf("%d,%d", i, -markLength))
		}
		i++
	}
	p := params{}
	if len(types) > 0 {
		p["axis_type"] = joined("axis_type", types)
	}
	if len(ranges) > 0 {
		p["axis_range"] = joined("axis_range", ranges)
	}
	if len(labels) > 0 {
		p["axis_label"] = joined("axis_label", labels)
	}
	if len(positions) > 0 {
		p["axis_position"] = joined("axis_position", positions)
	}
	if len(tickMarks) > 0 {
		p["axis_tick_marks"] = joined("axis_tick_marks", tickMarks)
	}
	return p, nil
}

func gridParams(st *encodeState) (params, error) {
	base := st.chart.Base()
	x, err := gridPercent(base.Bottom(), "bottom")
	if err != nil {
		return nil, err
	}
	y, err := gridPercent(base.Left(), "left")
	if err != nil {
		return nil, err
	}
	if x == 0 && y == 0 {
		return nil, nil
	}
	return params{"grid": fmt.Sprintf("%.3g,%.3g,1,0", x, y)}, nil
}

func gridPercent(axis *chart.Axis, name string) (float64, error) {
	if axis.GridSpacing == 0 {
		return 0, nil
	}
	if !axis.HasRange() {
		return 0, errors.New(errors.ErrCodeInvalidRange,
			"grid spacing on the %s axis requires an explicit range", name)
	}
	return 100 * axis.GridSpacing / (*axis.Max - *axis.Min), nil
}

// =============================================================================
// Series data
// =============================================================================

// baseKind holds the fragment behavior shared by the axis-based kinds.
type baseKind struct{}

func (baseKind) axisLabels(st *encodeState, code chart.Position, axis *chart.Axis) ([]string, []float64) {
	return axis.Labels, axis.LabelPositions
}

func (baseKind) tailParams(st *encodeState) ([]params, error) { return nil, nil }

func (baseKind) dataParams(st *encodeState) (params, error) {
	dep := st.chart.DependentAxis()
	var (
		series  [][]float64
		colors  []string
		styles  []string
		markers []string
	)
	kept := 0
	for _, s := range st.chart.Base().Data {
		if len(s.Points) == 0 {
			continue
		}
		series = append(series, s.Points)
		colors = append(colors, s.Color)
		if s.Style != nil {
			styles = append(styles, fmt.Sprintf("%d,%d,%d", s.Style.Width, s.Style.On, s.Style.Off))
		} else if len(styles) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidStyle,
				"line styles must be set on every series or on none")
		}
		for _, m := range s.Markers {
			markers = append(markers, fmt.Sprintf("%s,%s,%d,%d,%s",
				m.Marker.Shape, m.Marker.Color, kept, m.Index, formatFloat(m.Marker.Size)))
		}
		kept++
	}
	if len(styles) > 0 && len(styles) != len(series) {
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"line styles must be set on every series or on none")
	}

	p, err := encodeData(st, series, dep.Min, dep.Max)
	if err != nil {
		return nil, err
	}
	if len(colors) > 0 {
		p["color"] = joined("color", colors)
	}
	if len(styles) > 0 {
		p["line_style"] = joined("line_style", styles)
	}
	if len(markers) > 0 {
		p["marker"] = joined("marker", markers)
	}
	return p, nil
}

// encodeData scales each series onto the codec range and packs it. The
// bounds must be set together; both nil means encode the raw values.
func encodeData(st *encodeState, series [][]float64, min, max *float64) (params, error) {
	if (min == nil) != (max == nil) {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"dependent axis has only one bound set")
	}
	c := st.enc.codec()
	encoded := make([]string, len(series))
	for i, s := range series {
		if min != nil {
			s = Scale(s, *min, *max, 0, c.maxValue())
		}
		encoded[i] = c.encode(s)
	}
	return params{"data": c.prefix() + joined("data", encoded)}, nil
}

// formatFloat renders a float the shortest way that round-trips, so whole
// numbers come out without a decimal point.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// =============================================================================
// Line kinds
// =============================================================================

type lineKind struct{ baseKind }

func (lineKind) typeParams(st *encodeState) params {
	return params{"chart_type": "lc"}
}

type sparklineKind struct{ baseKind }

func (sparklineKind) typeParams(st *encodeState) params {
	return params{"chart_type": "lfi"}
}
