package chart

// LineChart plots one line per series against the left axis.
type LineChart struct {
	BaseChart
}

// NewLineChart creates an empty line chart with the default formatter
// pipeline (auto-color, auto-legend, auto-scale).
func NewLineChart() *LineChart {
	c := &LineChart{BaseChart: newBaseChart()}
	c.installDefaultFormatters()
	return c
}

// AddLine appends a line over the given points and returns its series for
// further styling. Lines start out solid.
func (c *LineChart) AddLine(points []float64) *Series {
	style := LineSolid
	s := NewSeries(points)
	s.Style = &style
	return c.AddSeries(s)
}

// DependentAxis returns the left axis.
func (c *LineChart) DependentAxis() *Axis { return c.Left() }

// IndependentAxis returns the bottom axis.
func (c *LineChart) IndependentAxis() *Axis { return c.Bottom() }

// Clone returns a deep copy.
func (c *LineChart) Clone() Chart {
	cp := &LineChart{}
	c.cloneInto(&cp.BaseChart)
	return cp
}

// Sparkline is a line chart rendered without axes or chart area framing.
type Sparkline struct {
	LineChart
}

// NewSparkline creates an empty sparkline with the default formatter
// pipeline.
func NewSparkline() *Sparkline {
	c := &Sparkline{LineChart: LineChart{BaseChart: newBaseChart()}}
	c.installDefaultFormatters()
	return c
}

// Clone returns a deep copy.
func (c *Sparkline) Clone() Chart {
	cp := &Sparkline{}
	c.cloneInto(&cp.BaseChart)
	return cp
}
