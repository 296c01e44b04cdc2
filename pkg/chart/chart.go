package chart

import "math"

// =============================================================================
// Axis positions
// =============================================================================

// Position identifies an axis slot. The value is the wire code used in the
// chxt parameter.
type Position string

const (
	Left   Position = "y"
	Right  Position = "r"
	Bottom Position = "x"
	Top    Position = "t"
)

// positionOrder is the enumeration order for axis parameters.
var positionOrder = [...]Position{Left, Right, Bottom, Top}

// PositionedAxis pairs an axis with the slot it occupies.
type PositionedAxis struct {
	Code Position
	Axis *Axis
}

// =============================================================================
// Chart interface
// =============================================================================

// Chart is implemented by every chart kind. The dependent axis measures
// data magnitude (left for vertical charts, bottom for horizontal bars);
// the independent axis measures position.
type Chart interface {
	// Base returns the shared chart state.
	Base() *BaseChart
	// DependentAxis returns the primary axis the data is scaled against.
	DependentAxis() *Axis
	// IndependentAxis returns the primary position/category axis.
	IndependentAxis() *Axis
	// DependentAxes returns every axis carrying data magnitude.
	DependentAxes() []*Axis
	// IndependentAxes returns every axis carrying data position.
	IndependentAxes() []*Axis
	// MinMax returns the smallest and largest sample values.
	// ok is false when the chart holds no samples.
	MinMax() (min, max float64, ok bool)
	// Clone returns a deep copy. Formatters run against clones so that
	// encoding never mutates caller-owned charts.
	Clone() Chart
}

// =============================================================================
// BaseChart
// =============================================================================

// BaseChart holds the state shared by all chart kinds: series, axis slots,
// and the formatter pipeline.
type BaseChart struct {
	// Data is the ordered list of series. Empty series are kept in the
	// model (callers may append points later) and dropped at encode time.
	Data []*Series

	// Formatters run in order against a deep copy right before encoding.
	Formatters []Formatter

	// Aliases into the default pipeline, for tweaking (e.g. the AutoScale
	// buffer). Nil when the chart kind installs no default pipeline.
	AutoColor  *AutoColor
	AutoLegend *AutoLegend
	AutoScale  *AutoScale

	axes map[Position][]*Axis

	showLegend   bool
	legendLabels []string
}

// newBaseChart initializes the axis slots with one axis per position.
func newBaseChart() BaseChart {
	axes := make(map[Position][]*Axis, len(positionOrder))
	for _, pos := range positionOrder {
		axes[pos] = []*Axis{NewAxis()}
	}
	return BaseChart{axes: axes}
}

// installDefaultFormatters sets up the pipeline used by axis-based charts.
func (b *BaseChart) installDefaultFormatters() {
	b.AutoColor = NewAutoColor()
	b.AutoLegend = &AutoLegend{}
	b.AutoScale = NewAutoScale()
	b.Formatters = []Formatter{b.AutoColor, b.AutoLegend, b.AutoScale}
}

// Base returns the shared chart state.
func (b *BaseChart) Base() *BaseChart { return b }

// =============================================================================
// Axis access
// =============================================================================

// Left returns the primary left axis.
func (b *BaseChart) Left() *Axis { return b.axes[Left][0] }

// Right returns the primary right axis.
func (b *BaseChart) Right() *Axis { return b.axes[Right][0] }

// Bottom returns the primary bottom axis.
func (b *BaseChart) Bottom() *Axis { return b.axes[Bottom][0] }

// Top returns the primary top axis.
func (b *BaseChart) Top() *Axis { return b.axes[Top][0] }

// AddAxis adds an extra axis to the given slot and returns it.
func (b *BaseChart) AddAxis(pos Position, a *Axis) *Axis {
	b.axes[pos] = append(b.axes[pos], a)
	return a
}

// Axes enumerates every axis in wire order: left, right, bottom, top, and
// insertion order within a slot. Axis parameter indexes are assigned by
// walking this enumeration.
func (b *BaseChart) Axes() []PositionedAxis {
	var out []PositionedAxis
	for _, pos := range positionOrder {
		for _, a := range b.axes[pos] {
			out = append(out, PositionedAxis{Code: pos, Axis: a})
		}
	}
	return out
}

// axesAt returns the axes occupying the given slots, in order.
func (b *BaseChart) axesAt(positions ...Position) []*Axis {
	var out []*Axis
	for _, pos := range positions {
		out = append(out, b.axes[pos]...)
	}
	return out
}

// DependentAxes returns the left and right axes. Chart kinds with a
// different orientation (horizontal bars) override this.
func (b *BaseChart) DependentAxes() []*Axis { return b.axesAt(Left, Right) }

// IndependentAxes returns the top and bottom axes.
func (b *BaseChart) IndependentAxes() []*Axis { return b.axesAt(Top, Bottom) }

// =============================================================================
// Series and formatter management
// =============================================================================

// AddSeries appends a series and returns it.
func (b *BaseChart) AddSeries(s *Series) *Series {
	b.Data = append(b.Data, s)
	return s
}

// AddFormatter appends a step to the formatter pipeline.
func (b *BaseChart) AddFormatter(f Formatter) {
	b.Formatters = append(b.Formatters, f)
}

// RemoveFormatter removes a previously added step, comparing by identity.
func (b *BaseChart) RemoveFormatter(f Formatter) {
	for i, g := range b.Formatters {
		if g == f {
			b.Formatters = append(b.Formatters[:i], b.Formatters[i+1:]...)
			return
		}
	}
}

// ShowLegend reports whether the legend parameter should be emitted.
// Normally decided by the AutoLegend formatter on the encode-time copy.
func (b *BaseChart) ShowLegend() bool { return b.showLegend }

// LegendLabels returns the legend entries, one per series, when the
// legend is shown.
func (b *BaseChart) LegendLabels() []string { return b.legendLabels }

// SetLegend overrides the legend entries explicitly.
func (b *BaseChart) SetLegend(labels []string) {
	b.showLegend = true
	b.legendLabels = labels
}

// HideLegend suppresses the legend parameter.
func (b *BaseChart) HideLegend() {
	b.showLegend = false
}

// =============================================================================
// Data bounds
// =============================================================================

// MinMax returns the smallest and largest samples across all series,
// skipping gaps. Stacked bar charts override this with per-index sums.
func (b *BaseChart) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range b.Data {
		for _, p := range s.Points {
			if IsGap(p) {
				continue
			}
			min = math.Min(min, p)
			max = math.Max(max, p)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// =============================================================================
// Cloning
// =============================================================================

// cloneInto deep-copies the base state into dst. Formatter instances are
// shared between the copies; they carry configuration only, never chart
// state, so running them against the copy cannot leak into the original.
func (b *BaseChart) cloneInto(dst *BaseChart) {
	dst.Data = make([]*Series, len(b.Data))
	for i, s := range b.Data {
		dst.Data[i] = s.clone()
	}
	dst.Formatters = append([]Formatter(nil), b.Formatters...)
	dst.AutoColor = b.AutoColor
	dst.AutoLegend = b.AutoLegend
	dst.AutoScale = b.AutoScale
	dst.axes = make(map[Position][]*Axis, len(b.axes))
	for pos, list := range b.axes {
		cp := make([]*Axis, len(list))
		for i, a := range list {
			cp[i] = a.clone()
		}
		dst.axes[pos] = cp
	}
	dst.showLegend = b.showLegend
	dst.legendLabels = append([]string(nil), b.legendLabels...)
}
