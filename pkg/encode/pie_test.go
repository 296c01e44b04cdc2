package encode

import (
	"testing"

	"github.com/charturl/charturl/pkg/chart"
)

func newTestPie(t *testing.T, points []float64, labels []string) *chart.PieChart {
	t.Helper()
	c := chart.NewPieChart()
	if err := c.AddSegments(points, labels, nil); err != nil {
		t.Fatalf("AddSegments() error = %v", err)
	}
	return c
}

func TestPieTypeCodes(t *testing.T) {
	c := chart.NewPieChart()
	e := NewPie(c)
	p := mustParams(t, e, 320, 240)
	checkParam(t, p, "cht", "p")

	e.ThreeD = true
	p = mustParams(t, e, 320, 240)
	checkParam(t, p, "cht", "p3")
}

func TestEmptyPie(t *testing.T) {
	p := mustParams(t, NewPie(chart.NewPieChart()), 320, 240)
	checkParam(t, p, "chd", "s:")
	if _, ok := p["chl"]; ok {
		t.Error("chl present for an empty pie")
	}
	if _, ok := p["chco"]; ok {
		t.Error("chco present for an empty pie")
	}
}

func TestPieEncoding(t *testing.T) {
	c := newTestPie(t, []float64{1, 2, 3}, []string{"Mouse", "Cat", "Dog"})
	p := mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:Up9")
	checkParam(t, p, "chl", "Mouse|Cat|Dog")
	checkParam(t, p, "cht", "p")
}

func TestPieGrowsWithSegments(t *testing.T) {
	c := newTestPie(t, []float64{1, 2, 3}, []string{"Mouse", "Cat", "Dog"})
	seg, err := chart.NewSegment(4, "", "Horse")
	if err != nil {
		t.Fatalf("NewSegment() error = %v", err)
	}
	c.AddSegment(seg)
	p := mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:Pfu9")
	checkParam(t, p, "chl", "Mouse|Cat|Dog|Horse")
}

func TestPieColors(t *testing.T) {
	c := chart.NewPieChart()
	if err := c.AddSegments([]float64{1, 2, 3},
		[]string{"Mouse", "Cat", "Dog"},
		[]string{"ff0000", "00ff00", "0000ff"}); err != nil {
		t.Fatalf("AddSegments() error = %v", err)
	}
	p := mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:Up9")
	checkParam(t, p, "chl", "Mouse|Cat|Dog")
	checkParam(t, p, "chco", "ff0000,00ff00,0000ff")

	// Colors may cover only a prefix of the segments.
	if err := c.AddSegments([]float64{4, 5, 6},
		[]string{"Horse", "Moose", "Elephant"},
		[]string{"cccccc"}); err != nil {
		t.Fatalf("AddSegments() error = %v", err)
	}
	p = mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:KUfpz9")
	checkParam(t, p, "chl", "Mouse|Cat|Dog|Horse|Moose|Elephant")
	checkParam(t, p, "chco", "ff0000,00ff00,0000ff,cccccc")
}

func TestUnlabeledSegmentPlaceholder(t *testing.T) {
	c := newTestPie(t, []float64{1, 2}, []string{"", "Cat"})
	p := mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chl", "_|Cat")
}

func TestHugeSegmentSizes(t *testing.T) {
	c := newTestPie(t, []float64{1e15, 3e15}, []string{"Big", "Uber"})
	e := NewPie(c)
	p := mustParams(t, e, 320, 240)
	checkParam(t, p, "chd", "s:U9")

	e.Enhanced = true
	p = mustParams(t, e, 320, 240)
	checkParam(t, p, "chd", "e:VV..")
}

func TestSegmentResize(t *testing.T) {
	c := chart.NewPieChart()
	one, err := chart.NewSegment(1, "", "")
	if err != nil {
		t.Fatalf("NewSegment() error = %v", err)
	}
	two, err := chart.NewSegment(2, "", "")
	if err != nil {
		t.Fatalf("NewSegment() error = %v", err)
	}
	c.AddSegment(one)
	c.AddSegment(two)
	p := mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:f9")

	if err := two.SetSize(3); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	p = mustParams(t, NewPie(c), 320, 240)
	checkParam(t, p, "chd", "s:U9")
}
