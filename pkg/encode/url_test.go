package encode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charturl/charturl/pkg/chart"
)

func TestURLEscaping(t *testing.T) {
	c := newTestLine()
	c.AddLine([]float64{1, 2, 3})
	u, err := NewLine(c).URL(500, 100)
	require.NoError(t, err)
	assert.NotContains(t, u, "chd=s:")
	assert.Contains(t, u, "chd=s%3AAf9")
}

func TestURLPlain(t *testing.T) {
	c := newTestLine()
	c.AddLine([]float64{1, 2, 3})
	e := NewLine(c)
	e.Plain = true
	u, err := e.URL(500, 100)
	require.NoError(t, err)
	assert.Contains(t, u, "chd=s:Af9")
}

func TestURLBase(t *testing.T) {
	c := newTestLine()
	e := NewLine(c)
	u, err := e.URL(320, 240)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, GoogleChartURL+"?"), u)

	e.BaseURL = "http://example.com/charts"
	u, err = e.URL(320, 240)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://example.com/charts?"), u)
}

func TestURLDropsEmptyValues(t *testing.T) {
	u := assembleURL("http://example.com", map[string]string{
		"chs": "320x240",
		"chd": "",
	}, true)
	assert.Equal(t, "http://example.com?chs=320x240", u)
}

func TestURLParamOrderIsSorted(t *testing.T) {
	u := assembleURL("http://example.com", map[string]string{
		"cht": "lc",
		"chd": "s:Af9",
		"chs": "320x240",
	}, false)
	assert.Equal(t, "http://example.com?chd=s:Af9&chs=320x240&cht=lc", u)
}

func TestURLWithoutParams(t *testing.T) {
	u := assembleURL("http://example.com", nil, true)
	assert.Equal(t, "http://example.com", u)
}

func TestImgTag(t *testing.T) {
	c := newTestLine()
	c.AddLine([]float64{1, 2, 3})
	e := NewLine(c)
	u, err := e.URL(89, 102)
	require.NoError(t, err)
	img, err := e.Img(89, 102)
	require.NoError(t, err)
	assert.Contains(t, img, u)
	assert.Contains(t, img, "width=89")
	assert.Contains(t, img, "height=102")
	assert.Contains(t, img, "chs=89x102")
}

func TestSameChartSameURL(t *testing.T) {
	c := newTestLine()
	c.AddLine([]float64{1, 2, 3}).Label = "up"
	c.Left().Labels = []string{"lo", "hi"}
	c.Left().LabelPositions = []float64{0, 100}
	e := NewLine(c)
	first, err := e.URL(320, 240)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		u, err := e.URL(320, 240)
		require.NoError(t, err)
		assert.Equal(t, first, u)
	}
}

func TestURLForClonedChartMatches(t *testing.T) {
	c := newTestLine()
	c.AddLine([]float64{1, 2, 3}).Label = "up"
	u1, err := NewLine(c).URL(320, 240)
	require.NoError(t, err)
	u2, err := NewLine(c.Clone().(*chart.LineChart)).URL(320, 240)
	require.NoError(t, err)
	assert.Equal(t, u1, u2)
}
