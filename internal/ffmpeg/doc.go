// Package ffmpeg builds and executes the ffmpeg command that exports the
// static clip as MP3, classifying failures from captured stderr.
//
// Types:
//   - ExecResult (stderr plus exit error of one invocation)
//   - RetryState (which MP3 encoder the next attempt uses)
//
// Functions:
//   - BuildTranscode(cfg, encoder) → []string
//   - Execute(ctx, args, verbose) → ExecResult
//   - Classify(stderr) → ErrEncoderMissing | ErrInputInvalid | nil
//   - Transcode(ctx, cfg, log) → error
//     Runs BuildTranscode/Execute, falling back to the next encoder when
//     the current one is missing from the ffmpeg build.
package ffmpeg
