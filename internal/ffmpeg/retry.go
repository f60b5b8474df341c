package ffmpeg

// mp3Encoders are tried in order. libshine is a fixed-point fallback some
// minimal ffmpeg builds ship instead of LAME.
var mp3Encoders = []string{"libmp3lame", "libshine"}

// RetryState tracks which encoder the next transcode attempt uses.
type RetryState struct {
	Attempt  int
	Encoders []string
}

// NewRetryState starts at the preferred encoder.
func NewRetryState() *RetryState {
	return &RetryState{Encoders: mp3Encoders}
}

// Encoder is the encoder for the current attempt.
func (s *RetryState) Encoder() string {
	return s.Encoders[s.Attempt]
}

// Advance inspects stderr from a failed run and moves to the next encoder
// when the current one is missing. Returns false when the failure has
// another cause or no encoders remain.
func (s *RetryState) Advance(stderr string) bool {
	if !MatchEncoderMissing(stderr) || s.Attempt+1 >= len(s.Encoders) {
		return false
	}
	s.Attempt++
	return true
}
