// Package encode turns chart models into Google Chart API URLs.
//
// An Encoder pairs a chart with the wire rules of its kind (line,
// sparkline, bar, pie). Encoding never mutates the chart: the formatter
// pipeline runs against a deep copy, so one chart may be encoded
// concurrently with different settings.
//
//	c := chart.NewLineChart()
//	c.AddLine([]float64{1, 2, 3})
//	url, err := encode.NewLine(c).URL(400, 200)
//
// Sample values are packed into the URL with one of two alphabet codecs:
// the coarse codec spends one symbol per sample (62 steps of resolution),
// the enhanced codec two (4096 steps). Samples are first scaled onto the
// codec's range from the dependent axis range, so resolution is relative
// to the plotted window, not to the raw values.
package encode
