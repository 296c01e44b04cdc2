package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/charturl/charturl/pkg/chart"
	"github.com/charturl/charturl/pkg/encode"
	"github.com/charturl/charturl/pkg/errors"
)

// Chart kinds accepted in description files.
const (
	kindLine      = "line"
	kindSparkline = "sparkline"
	kindBar       = "bar"
	kindPie       = "pie"
)

// =============================================================================
// Description file schema
// =============================================================================

// ChartFile is a chart description. The same structure is read from TOML
// files on disk and from JSON request bodies in the HTTP API.
type ChartFile struct {
	Kind     string             `toml:"kind" json:"kind"`
	Series   []SeriesDef        `toml:"series" json:"series,omitempty"`
	Segments []SegmentDef       `toml:"segments" json:"segments,omitempty"`
	Axes     map[string]AxisDef `toml:"axes" json:"axes,omitempty"`
	Bar      BarDef             `toml:"bar" json:"bar,omitempty"`
	Pie      PieDef             `toml:"pie" json:"pie,omitempty"`
	Format   FormatDef          `toml:"format" json:"format,omitempty"`
}

// SeriesDef describes one data series. A nil point is a gap (JSON null;
// TOML can use nan to the same effect).
type SeriesDef struct {
	Points  []*float64  `toml:"points" json:"points"`
	Color   string      `toml:"color" json:"color,omitempty"`
	Label   string      `toml:"label" json:"label,omitempty"`
	Style   string      `toml:"style" json:"style,omitempty"`
	Markers []MarkerDef `toml:"markers" json:"markers,omitempty"`
}

// MarkerDef places a marker on one point of its series.
type MarkerDef struct {
	Index int     `toml:"index" json:"index"`
	Shape string  `toml:"shape" json:"shape"`
	Color string  `toml:"color" json:"color,omitempty"`
	Size  float64 `toml:"size" json:"size,omitempty"`
}

// SegmentDef describes one pie segment.
type SegmentDef struct {
	Size  float64 `toml:"size" json:"size"`
	Label string  `toml:"label" json:"label,omitempty"`
	Color string  `toml:"color" json:"color,omitempty"`
}

// AxisDef configures one of the primary axes (left, right, bottom, top).
type AxisDef struct {
	Min         *float64  `toml:"min" json:"min,omitempty"`
	Max         *float64  `toml:"max" json:"max,omitempty"`
	Labels      []string  `toml:"labels" json:"labels,omitempty"`
	Positions   []float64 `toml:"positions" json:"positions,omitempty"`
	GridSpacing float64   `toml:"grid_spacing" json:"grid_spacing,omitempty"`
	Gridlines   bool      `toml:"gridlines" json:"gridlines,omitempty"`
}

// BarDef selects bar chart orientation, stacking, and geometry.
type BarDef struct {
	Horizontal bool `toml:"horizontal" json:"horizontal,omitempty"`
	Stacked    bool `toml:"stacked" json:"stacked,omitempty"`
	Thickness  *int `toml:"thickness" json:"thickness,omitempty"`
	BarGap     *int `toml:"bar_gap" json:"bar_gap,omitempty"`
	GroupGap   *int `toml:"group_gap" json:"group_gap,omitempty"`
}

// PieDef selects pie chart rendering options.
type PieDef struct {
	ThreeD bool `toml:"three_d" json:"three_d,omitempty"`
}

// FormatDef tweaks the formatter pipeline.
type FormatDef struct {
	ScaleBuffer    *float64     `toml:"scale_buffer" json:"scale_buffer,omitempty"`
	InlineLegend   bool         `toml:"inline_legend" json:"inline_legend,omitempty"`
	SeparateLabels SeparatorDef `toml:"separate_labels" json:"separate_labels,omitempty"`
}

// SeparatorDef gives per-axis minimum label spacing, in axis units.
type SeparatorDef struct {
	Left   float64 `toml:"left" json:"left,omitempty"`
	Right  float64 `toml:"right" json:"right,omitempty"`
	Bottom float64 `toml:"bottom" json:"bottom,omitempty"`
}

// =============================================================================
// Loading
// =============================================================================

// LoadChartFile reads a chart description from disk. Files ending in
// .json are parsed as JSON, everything else as TOML.
func LoadChartFile(path string) (*ChartFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading chart file %s", path)
	}
	var f ChartFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = toml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing chart file %s", path)
	}
	return &f, nil
}

// =============================================================================
// Building
// =============================================================================

// Encoder validates the description and builds a ready-to-use encoder.
func (f *ChartFile) Encoder() (*encode.Encoder, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	switch strings.ToLower(f.Kind) {
	case kindLine:
		c := chart.NewLineChart()
		if err := f.fill(&c.BaseChart, c.AddLine); err != nil {
			return nil, err
		}
		return encode.NewLine(c), nil
	case kindSparkline:
		c := chart.NewSparkline()
		if err := f.fill(&c.BaseChart, c.AddLine); err != nil {
			return nil, err
		}
		return encode.NewSparkline(c), nil
	case kindBar:
		c := chart.NewBarChart()
		c.Vertical = !f.Bar.Horizontal
		c.Stacked = f.Bar.Stacked
		if err := f.fill(&c.BaseChart, c.AddBars); err != nil {
			return nil, err
		}
		e := encode.NewBar(c)
		if f.Bar.Thickness != nil || f.Bar.BarGap != nil || f.Bar.GroupGap != nil {
			e.BarStyle = &chart.BarStyle{
				Thickness: f.Bar.Thickness,
				BarGap:    f.Bar.BarGap,
				GroupGap:  f.Bar.GroupGap,
			}
		}
		return e, nil
	case kindPie:
		c := chart.NewPieChart()
		for _, def := range f.Segments {
			seg, err := chart.NewSegment(def.Size, def.Color, def.Label)
			if err != nil {
				return nil, err
			}
			c.AddSegment(seg)
		}
		if err := f.applyAxes(&c.BaseChart); err != nil {
			return nil, err
		}
		e := encode.NewPie(c)
		e.ThreeD = f.Pie.ThreeD
		return e, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind,
			"unknown chart kind %q (want line, sparkline, bar, or pie)", f.Kind)
	}
}

// validate checks the cross-cutting constraints before building anything.
func (f *ChartFile) validate() error {
	pie := strings.EqualFold(f.Kind, kindPie)
	if pie && len(f.Series) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pie charts take segments, not series")
	}
	if pie && f.Format != (FormatDef{}) {
		return errors.New(errors.ErrCodeInvalidInput, "format options apply to axis-based charts, not pies")
	}
	if !pie && len(f.Segments) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "segments are only valid for pie charts")
	}
	for _, s := range f.Series {
		if err := errors.ValidateHexColor(s.Color); err != nil {
			return err
		}
		for _, m := range s.Markers {
			if err := errors.ValidateHexColor(m.Color); err != nil {
				return err
			}
		}
	}
	for _, s := range f.Segments {
		if err := errors.ValidateHexColor(s.Color); err != nil {
			return err
		}
	}
	return nil
}

// fill populates an axis-based chart from the description: series, axes,
// and pipeline tweaks.
func (f *ChartFile) fill(base *chart.BaseChart, add func([]float64) *chart.Series) error {
	for _, def := range f.Series {
		s := add(points(def.Points))
		s.Color = def.Color
		s.Label = def.Label
		style, err := lineStyle(def.Style)
		if err != nil {
			return err
		}
		if style != nil {
			s.Style = style
		}
		for _, m := range def.Markers {
			s.AddMarker(m.Index, chart.Marker{Shape: m.Shape, Color: m.Color, Size: m.Size})
		}
	}
	if err := f.applyAxes(base); err != nil {
		return err
	}

	if f.Format.ScaleBuffer != nil {
		if base.AutoScale == nil {
			return errors.New(errors.ErrCodeInvalidInput, "scale_buffer needs an auto-scaled chart kind")
		}
		base.AutoScale.Buffer = *f.Format.ScaleBuffer
	}
	if f.Format.InlineLegend {
		base.AddFormatter(&chart.InlineLegend{})
	}
	sep := f.Format.SeparateLabels
	if sep.Left != 0 || sep.Right != 0 || sep.Bottom != 0 {
		base.AddFormatter(&chart.LabelSeparator{
			Left:   sep.Left,
			Right:  sep.Right,
			Bottom: sep.Bottom,
		})
	}
	return nil
}

// applyAxes copies the axis sections onto the chart's primary axes.
func (f *ChartFile) applyAxes(base *chart.BaseChart) error {
	for name, def := range f.Axes {
		var axis *chart.Axis
		switch strings.ToLower(name) {
		case "left":
			axis = base.Left()
		case "right":
			axis = base.Right()
		case "bottom":
			axis = base.Bottom()
		case "top":
			axis = base.Top()
		default:
			return errors.New(errors.ErrCodeInvalidInput,
				"unknown axis %q (want left, right, bottom, or top)", name)
		}
		axis.Min = def.Min
		axis.Max = def.Max
		axis.Labels = def.Labels
		axis.LabelPositions = def.Positions
		axis.GridSpacing = def.GridSpacing
		axis.LabelGridlines = def.Gridlines
	}
	return nil
}

// points converts description points to samples, turning nils into gaps.
func points(in []*float64) []float64 {
	out := make([]float64, len(in))
	for i, p := range in {
		if p == nil {
			out[i] = chart.Gap()
		} else {
			out[i] = *p
		}
	}
	return out
}

// lineStyle resolves a style name from a description file. An empty name
// returns nil, keeping the chart kind's default.
func lineStyle(name string) (*chart.LineStyle, error) {
	var s chart.LineStyle
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "solid":
		s = chart.LineSolid
	case "dashed":
		s = chart.LineDashed
	case "thick-solid":
		s = chart.LineThickSolid
	case "thick-dashed":
		s = chart.LineThickDashed
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"unknown line style %q (want solid, dashed, thick-solid, or thick-dashed)", name)
	}
	return &s, nil
}
