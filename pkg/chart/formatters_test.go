package chart

import (
	"testing"
)

func TestAutoColorCyclesOverUncoloredSeries(t *testing.T) {
	c := NewLineChart()
	for i := 0; i < 5; i++ {
		c.AddLine([]float64{1})
	}
	c.Data[1].Color = "123456"

	NewAutoColor().Format(c)

	want := []string{"0000ff", "123456", "ff0000", "00dd00", "000000"}
	for i, w := range want {
		if got := c.Data[i].Color; got != w {
			t.Errorf("series %d color = %q, want %q", i, got, w)
		}
	}
}

func TestAutoColorWrapsPalette(t *testing.T) {
	c := NewLineChart()
	for i := 0; i < 5; i++ {
		c.AddLine([]float64{1})
	}

	NewAutoColor().Format(c)

	if got, want := c.Data[4].Color, "0000ff"; got != want {
		t.Errorf("series 4 color = %q, want %q", got, want)
	}
}

func TestAutoLegendShowsWhenAnySeriesLabeled(t *testing.T) {
	c := NewLineChart()
	c.AddLine([]float64{1})
	c.AddLine([]float64{2}).Label = "beta"

	(&AutoLegend{}).Format(c)

	if !c.ShowLegend() {
		t.Fatal("ShowLegend() = false, want true")
	}
	labels := c.LegendLabels()
	if len(labels) != 2 || labels[0] != "" || labels[1] != "beta" {
		t.Errorf("LegendLabels() = %q, want [\"\" \"beta\"]", labels)
	}
}

func TestAutoLegendHidesWhenNothingLabeled(t *testing.T) {
	c := NewLineChart()
	c.AddLine([]float64{1})

	(&AutoLegend{}).Format(c)

	if c.ShowLegend() {
		t.Error("ShowLegend() = true with no labeled series, want false")
	}
}

func TestAutoScaleFillsMissingBounds(t *testing.T) {
	c := NewLineChart()
	c.AddLine([]float64{1, 5})

	NewAutoScale().Format(c)

	left := c.Left()
	if !left.HasRange() {
		t.Fatal("left axis has no range after AutoScale")
	}
	if got := *left.Min; got != 0.8 {
		t.Errorf("left.Min = %g, want 0.8", got)
	}
	if got := *left.Max; got != 5.2 {
		t.Errorf("left.Max = %g, want 5.2", got)
	}
	right := c.Right()
	if !right.HasRange() {
		t.Error("right axis has no range after AutoScale")
	}
}

func TestAutoScaleKeepsExplicitBounds(t *testing.T) {
	c := NewLineChart()
	c.AddLine([]float64{1, 5})
	c.Left().Min = Float(-100)

	NewAutoScale().Format(c)

	if got := *c.Left().Min; got != -100 {
		t.Errorf("left.Min = %g, want the explicit -100", got)
	}
	if got := *c.Left().Max; got != 5.2 {
		t.Errorf("left.Max = %g, want 5.2", got)
	}
}

func TestAutoScaleNoData(t *testing.T) {
	c := NewLineChart()
	NewAutoScale().Format(c)
	if c.Left().HasRange() {
		t.Error("left axis gained a range with no data")
	}
}

func TestLabelSeparatorPushesCollidingLabelsApart(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		spacing   float64
		want      []float64
	}{
		{
			name:      "small collisions",
			positions: []float64{1000, 999, 900, 0, -99, -100},
			spacing:   40,
			want:      []float64{1000, 960, 900, 0, -60, -100},
		},
		{
			name:      "spacing clamped to the axis range",
			positions: []float64{1000, 999, 900, 0, -99, -100},
			spacing:   300,
			want:      []float64{1000, 780, 560, 340, 120, -100},
		},
		{
			name:      "no collisions",
			positions: []float64{1000, 900, 800, 700, 200, 100, 0, -100},
			spacing:   100,
			want:      []float64{1000, 900, 800, 700, 200, 100, 0, -100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLineChart()
			left := c.Left()
			left.SetRange(-100, 1000)
			left.LabelPositions = append([]float64(nil), tt.positions...)
			left.Labels = make([]string, len(tt.positions))

			(&LabelSeparator{Left: tt.spacing}).Format(c)

			if len(left.LabelPositions) != len(tt.want) {
				t.Fatalf("len(positions) = %d, want %d", len(left.LabelPositions), len(tt.want))
			}
			for i, w := range tt.want {
				if got := left.LabelPositions[i]; got != w {
					t.Errorf("position %d = %g, want %g", i, got, w)
				}
			}
		})
	}
}

func TestLabelSeparatorSingleLabelUntouched(t *testing.T) {
	c := NewLineChart()
	left := c.Left()
	left.Labels = []string{"only"}
	left.LabelPositions = []float64{42}

	(&LabelSeparator{Left: 100}).Format(c)

	if got := left.LabelPositions[0]; got != 42 {
		t.Errorf("position = %g, want 42", got)
	}
}

func TestLabelSeparatorSortsPairsByPosition(t *testing.T) {
	c := NewLineChart()
	left := c.Left()
	left.SetRange(0, 100)
	left.Labels = []string{"low", "high"}
	left.LabelPositions = []float64{10, 90}

	(&LabelSeparator{Left: 5}).Format(c)

	if left.Labels[0] != "high" || left.Labels[1] != "low" {
		t.Errorf("Labels = %q, want [high low]", left.Labels)
	}
	if left.LabelPositions[0] != 90 || left.LabelPositions[1] != 10 {
		t.Errorf("LabelPositions = %v, want [90 10]", left.LabelPositions)
	}
}

func TestInlineLegendLabelsLineEnds(t *testing.T) {
	c := NewLineChart()
	c.AddLine([]float64{1, 2, 3}).Label = "up"
	c.AddLine([]float64{3, 2, 1}).Label = "down"
	c.Left().SetRange(0, 4)
	c.SetLegend([]string{"up", "down"})

	(&InlineLegend{}).Format(c)

	right := c.Right()
	if got := right.Labels; len(got) != 2 || got[0] != "up" || got[1] != "down" {
		t.Errorf("right.Labels = %q, want [up down]", got)
	}
	if got := right.LabelPositions; len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("right.LabelPositions = %v, want [3 1]", got)
	}
	if !right.HasRange() || *right.Min != 0 || *right.Max != 4 {
		t.Errorf("right range = (%v, %v), want (0, 4)", right.Min, right.Max)
	}
	if c.ShowLegend() {
		t.Error("ShowLegend() = true after InlineLegend, want false")
	}
}
