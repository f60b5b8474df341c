package noise

import (
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// Cascade is a band-pass built from biquad sections applied in order.
type Cascade struct {
	Sections []biquad.Coefficients
}

// NewBandPass builds an order-th order Butterworth high-pass at low followed
// by an order-th order Butterworth low-pass at high.
func NewBandPass(low, high, sampleRate float64, order int) (*Cascade, error) {
	nyquist := sampleRate / 2
	switch {
	case sampleRate <= 0:
		return nil, fmt.Errorf("%w: sample rate must be positive", ErrInvalidParams)
	case low <= 0 || low >= high || high >= nyquist:
		return nil, fmt.Errorf("%w: need 0 < low (%g) < high (%g) < nyquist (%g)", ErrInvalidParams, low, high, nyquist)
	case order < 2 || order%2 != 0:
		return nil, fmt.Errorf("%w: order must be even and >= 2, got %d", ErrInvalidParams, order)
	}

	sections := design.ButterworthHP(low, order, sampleRate)
	sections = append(sections, design.ButterworthLP(high, order, sampleRate)...)
	return &Cascade{Sections: sections}, nil
}

// Order is the total filter order of the cascade.
func (c *Cascade) Order() int { return c.chain().Order() }

// Response is the cascade's magnitude response at freq Hz.
func (c *Cascade) Response(freq, sampleRate float64) float64 {
	return cmplx.Abs(c.chain().Response(freq, sampleRate))
}

// chain returns a fresh chain at rest.
func (c *Cascade) chain() *biquad.Chain {
	return biquad.NewChain(c.Sections)
}

// Filter runs x through every section once, starting from rest. x is not
// modified.
func (c *Cascade) Filter(x []float64) []float64 {
	y := slices.Clone(x)
	c.chain().ProcessBlock(y)
	return y
}

// FiltFilt filters x forward then backward, cancelling the phase shift.
// Both ends are extended by odd reflection (3 x Order samples, capped at
// len(x)-1) to reduce start-up transients.
func (c *Cascade) FiltFilt(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}
	pad := min(3*c.Order(), n-1)

	ext := make([]float64, 0, n+2*pad)
	for i := pad; i >= 1; i-- {
		ext = append(ext, 2*x[0]-x[i])
	}
	ext = append(ext, x...)
	for i := 1; i <= pad; i++ {
		ext = append(ext, 2*x[n-1]-x[n-1-i])
	}

	y := c.Filter(ext)
	slices.Reverse(y)
	y = c.Filter(y)
	slices.Reverse(y)
	return y[pad : pad+n]
}
