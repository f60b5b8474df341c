// Package noise synthesizes the band-limited static played on "static"
// channels: uniform white noise, a zero-phase Butterworth band-pass,
// peak normalization, and attenuated 16-bit PCM written as a mono WAV.
//
//	pcm, err := noise.Synthesize(p, rand.New(rand.NewPCG(seed, seed)))
//	err = noise.EncodeWAV(w, pcm, p.SampleRate)
package noise
