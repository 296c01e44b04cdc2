package encode

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// assembleURL joins parameters onto the base URL. Keys are emitted in
// sorted order so the same chart always yields the same URL, and empty
// values are dropped.
func assembleURL(base string, p map[string]string, escape bool) string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return base
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := p[k]
		if escape {
			v = url.QueryEscape(v)
		}
		pairs = append(pairs, k+"="+v)
	}
	return base + "?" + strings.Join(pairs, "&")
}

// URL returns the chart URL for a rendering of the given pixel size.
func (e *Encoder) URL(width, height int) (string, error) {
	p, err := e.Params(width, height)
	if err != nil {
		return "", err
	}
	return assembleURL(e.BaseURL, p, !e.Plain), nil
}

// Img returns an HTML tag embedding the chart.
func (e *Encoder) Img(width, height int) (string, error) {
	u, err := e.URL(width, height)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<img src='%s' width=%d height=%d alt='chart'/>", u, width, height), nil
}
