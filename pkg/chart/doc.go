// Package chart defines the chart data model: series, axes, styles, and
// the four chart kinds (line, sparkline, bar, pie).
//
// A chart is plain mutable data owned by the caller. Encoding never
// touches it: the encoder works on a deep copy (see Chart.Clone), runs the
// chart's formatter pipeline against that copy, and discards it. This
// makes concurrent encodes of the same chart safe as long as the caller
// is not mutating the chart at the same time.
//
// # Formatters
//
// Formatters are pipeline steps that fill in defaults right before
// encoding: AutoColor assigns palette colors to series without one,
// AutoLegend builds the legend from series labels, and AutoScale derives
// the dependent axis range from the data. Axis-based charts install all
// three by default; pie charts start with an empty pipeline. Callers can
// append their own steps with AddFormatter.
//
// # Missing data
//
// A NaN sample means "no data at this point". Use Gap and IsGap rather
// than spelling out math.NaN.
//
// # Example
//
//	c := chart.NewLineChart()
//	s := c.AddLine([]float64{1, chart.Gap(), 3})
//	s.Label = "visits"
//	url, err := encode.NewLine(c).URL(400, 200)
package chart
