package noise

import "math"

// Normalize scales x in place so its largest magnitude is 1. An all-zero
// signal is left unchanged.
func Normalize(x []float64) {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}
	if peak == 0 {
		return
	}
	for i := range x {
		x[i] /= peak
	}
}

// ToPCM16 converts samples in [-1, 1] to 16-bit PCM: each value is scaled
// by 32767, truncated toward zero, then floor-divided by attenuation.
// Values outside [-1, 1] are clipped first.
func ToPCM16(x []float64, attenuation int) []int16 {
	if attenuation < 1 {
		attenuation = 1
	}
	pcm := make([]int16, len(x))
	for i, v := range x {
		v = max(-1, min(1, v))
		pcm[i] = int16(floorDiv(int(v*math.MaxInt16), attenuation))
	}
	return pcm
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
