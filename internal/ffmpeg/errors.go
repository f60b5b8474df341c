package ffmpeg

import (
	"errors"
	"regexp"
)

// Sentinel errors for the ffmpeg failures mkstatic can explain.
var (
	ErrEncoderMissing = errors.New("ffmpeg has no usable MP3 encoder")
	ErrInputInvalid   = errors.New("ffmpeg could not read the WAV input")
)

// Pre-compiled regexes for classifying ffmpeg stderr output.
var (
	reEncoderMissing = regexp.MustCompile(
		`(?i)Unknown encoder|Encoder .* not found|Encoder not found|` +
			`Requested output format 'mp3' is not a suitable output format`)

	reInputInvalid = regexp.MustCompile(
		`(?i)Invalid data found when processing input|` +
			`No such file or directory|` +
			`could not find codec parameters|` +
			`Output file (#0 )?does not contain any stream`)
)

// MatchEncoderMissing reports whether stderr says the encoder is unavailable.
func MatchEncoderMissing(stderr string) bool {
	return reEncoderMissing.MatchString(stderr)
}

// MatchInputInvalid reports whether stderr says the input was unreadable.
func MatchInputInvalid(stderr string) bool {
	return reInputInvalid.MatchString(stderr)
}

// Classify maps stderr of a failed run to a sentinel error, or nil when the
// failure is not recognized.
func Classify(stderr string) error {
	switch {
	case MatchEncoderMissing(stderr):
		return ErrEncoderMissing
	case MatchInputInvalid(stderr):
		return ErrInputInvalid
	}
	return nil
}
