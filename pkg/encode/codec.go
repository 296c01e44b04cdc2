package encode

import (
	"math"
	"strings"
)

// =============================================================================
// Codecs
// =============================================================================

// codec packs scaled samples into one of the chart server's data alphabets.
// Samples outside [0, maxValue] and gaps come out as the codec's
// placeholder, which the server renders as a missing point.
type codec interface {
	// prefix returns the chd encoding marker, e.g. "s:".
	prefix() string
	// maxValue returns the largest encodable value.
	maxValue() float64
	// encode packs one series of scaled samples.
	encode(samples []float64) string
}

const simpleAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// simpleCodec spends one symbol per sample: 62 steps of resolution.
type simpleCodec struct{}

func (simpleCodec) prefix() string    { return "s:" }
func (simpleCodec) maxValue() float64 { return float64(len(simpleAlphabet) - 1) }

func (c simpleCodec) encode(samples []float64) string {
	var b strings.Builder
	b.Grow(len(samples))
	for _, v := range samples {
		i, ok := quantize(v, c.maxValue())
		if !ok {
			b.WriteByte('_')
			continue
		}
		b.WriteByte(simpleAlphabet[i])
	}
	return b.String()
}

const enhancedAlphabet = simpleAlphabet + "-."

// enhancedCodec spends two symbols per sample: 4096 steps of resolution.
type enhancedCodec struct{}

func (enhancedCodec) prefix() string { return "e:" }
func (enhancedCodec) maxValue() float64 {
	return float64(len(enhancedAlphabet)*len(enhancedAlphabet) - 1)
}

func (c enhancedCodec) encode(samples []float64) string {
	var b strings.Builder
	b.Grow(2 * len(samples))
	for _, v := range samples {
		i, ok := quantize(v, c.maxValue())
		if !ok {
			b.WriteString("__")
			continue
		}
		b.WriteByte(enhancedAlphabet[i/len(enhancedAlphabet)])
		b.WriteByte(enhancedAlphabet[i%len(enhancedAlphabet)])
	}
	return b.String()
}

// quantize rounds a scaled sample to its alphabet slot. ok is false for
// gaps and for samples that round outside [0, max].
func quantize(v, max float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	r := math.Round(v)
	if r < 0 || r > max {
		return 0, false
	}
	return int(r), true
}

// =============================================================================
// Scaling
// =============================================================================

// Scale maps samples so that [oldMin, oldMax] spans [newMin, newMax].
// A zero-width input domain maps one-to-one shifted to newMin, instead of
// dividing by zero. Gaps pass through unchanged.
func Scale(samples []float64, oldMin, oldMax, newMin, newMax float64) []float64 {
	scale := 1.0
	if oldMin != oldMax {
		scale = (newMax - newMin) / (oldMax - oldMin)
	}
	translate := newMin - scale*oldMin
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = scale*v + translate
	}
	return out
}
