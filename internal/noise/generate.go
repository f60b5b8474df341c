package noise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/backmassage/channelsurf/internal/config"
)

// ErrInvalidParams is returned when the signal or filter parameters cannot
// describe a usable noise clip.
var ErrInvalidParams = errors.New("invalid noise parameters")

// Params describes one noise clip.
type Params struct {
	SampleRate  int
	Duration    time.Duration
	LowCut      float64 // Hz
	HighCut     float64 // Hz
	Order       int     // Butterworth order per band edge, even.
	Attenuation int     // PCM samples are floor-divided by this.
}

// ParamsFrom copies the signal settings out of a mkstatic config.
func ParamsFrom(cfg *config.StaticConfig) Params {
	return Params{
		SampleRate:  cfg.SampleRate,
		Duration:    cfg.Duration,
		LowCut:      cfg.LowCut,
		HighCut:     cfg.HighCut,
		Order:       cfg.Order,
		Attenuation: cfg.Attenuation,
	}
}

// Samples is the clip length in samples.
func (p Params) Samples() int {
	return int(int64(p.SampleRate) * int64(p.Duration) / int64(time.Second))
}

// Generate returns p.Samples() values drawn uniformly from [-1, 1).
func Generate(p Params, rng *rand.Rand) []float64 {
	x := make([]float64, p.Samples())
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	return x
}

// Synthesize runs the full chain: generate, band-pass forward and
// backward, normalize, convert to attenuated PCM.
func Synthesize(p Params, rng *rand.Rand) ([]int16, error) {
	if p.Samples() < 1 {
		return nil, fmt.Errorf("%w: %d Hz for %s yields no samples", ErrInvalidParams, p.SampleRate, p.Duration)
	}
	if p.Attenuation < 1 {
		return nil, fmt.Errorf("%w: attenuation must be >= 1, got %d", ErrInvalidParams, p.Attenuation)
	}
	bp, err := NewBandPass(p.LowCut, p.HighCut, float64(p.SampleRate), p.Order)
	if err != nil {
		return nil, err
	}

	y := bp.FiltFilt(Generate(p, rng))
	Normalize(y)
	return ToPCM16(y, p.Attenuation), nil
}
