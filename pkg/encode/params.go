package encode

import (
	"fmt"
	"strings"

	"github.com/charturl/charturl/pkg/errors"
)

// =============================================================================
// Parameter names
// =============================================================================

// longNames maps readable parameter names to the chart server's wire
// names. Fragments build parameters under the long names; shortenNames
// rewrites them right before merging.
var longNames = map[string]string{
	"client_id":            "chc",
	"size":                 "chs",
	"chart_type":           "cht",
	"axis_type":            "chxt",
	"axis_label":           "chxl",
	"axis_position":        "chxp",
	"axis_range":           "chxr",
	"axis_style":           "chxs",
	"data":                 "chd",
	"label":                "chl",
	"y_label":              "chly",
	"data_label":           "chld",
	"data_series_label":    "chdl",
	"color":                "chco",
	"extra":                "chp",
	"right_label":          "chlr",
	"label_position":       "chlp",
	"y_label_position":     "chlyp",
	"right_label_position": "chlrp",
	"grid":                 "chg",
	"axis":                 "chx",
	// Tick mark length per axis. Negative lengths extend the marks into
	// the plot area.
	"axis_tick_marks": "chxtc",
	"line_style":      "chls",
	"marker":          "chm",
	"fill":            "chf",
	"bar_height":      "chbh",
	"label_color":     "chlc",
	"signature":       "sig",
	"output_format":   "chof",
	"title":           "chtt",
	"title_style":     "chts",
	"callback":        "callback",
}

// joinDelims gives the list delimiter for multi-valued parameters, keyed
// by long name.
var joinDelims = map[string]string{
	"data":              ",",
	"color":             ",",
	"line_style":        "|",
	"marker":            "|",
	"axis_type":         ",",
	"axis_range":        "|",
	"axis_label":        "|",
	"axis_position":     "|",
	"axis_tick_marks":   "|",
	"data_series_label": "|",
	"label":             "|",
	"bar_height":        ",",
}

// params is one fragment's worth of URL parameters, keyed by long or wire
// name until shortenNames runs.
type params map[string]string

// joined returns the values joined with the parameter's delimiter, or ""
// when there are none.
func joined(longName string, values []string) string {
	delim, ok := joinDelims[longName]
	if !ok {
		panic(fmt.Sprintf("parameter %q has no join delimiter", longName))
	}
	return strings.Join(values, delim)
}

// shortenNames rewrites long names to wire names. A fragment that carries
// both spellings of the same parameter is ambiguous and rejected.
func shortenNames(in params) (params, error) {
	out := make(params, len(in))
	for name, value := range in {
		short, ok := longNames[name]
		if !ok {
			short = name
		}
		if _, dup := out[short]; dup {
			return nil, errors.New(errors.ErrCodeParamConflict,
				"parameter given as both %q and %q", name, short)
		}
		out[short] = value
	}
	return out, nil
}
