package config

// CLI flag parsing and help text for mkstatic.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ParseStaticFlags parses args (without the program name) into cfg.
func ParseStaticFlags(cfg *StaticConfig, args []string, version string) error {
	fs := flag.NewFlagSet("mkstatic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		noMP3   bool
		display displayFlags
		utility utilityFlags
	)

	fs.StringVar(&cfg.WAVPath, "output", cfg.WAVPath, "WAV output path")
	fs.StringVar(&cfg.WAVPath, "o", cfg.WAVPath, "Same as --output")
	fs.StringVar(&cfg.MP3Path, "mp3", cfg.MP3Path, "MP3 output path")
	fs.BoolVar(&noMP3, "no-mp3", false, "Skip the MP3 export")
	fs.StringVar(&cfg.MP3Bitrate, "bitrate", cfg.MP3Bitrate, "MP3 bitrate")
	fs.IntVar(&cfg.SampleRate, "sample-rate", cfg.SampleRate, "Samples per second")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Length of the noise")
	fs.Float64Var(&cfg.LowCut, "low", cfg.LowCut, "Low cutoff in Hz")
	fs.Float64Var(&cfg.HighCut, "high", cfg.HighCut, "High cutoff in Hz")
	fs.IntVar(&cfg.Order, "order", cfg.Order, "Butterworth order per band edge")
	fs.IntVar(&cfg.Attenuation, "attenuation", cfg.Attenuation, "Divide PCM samples by this")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = from clock)")
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Run ffmpeg diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	defineDisplayFlags(fs, &cfg.Display, &display)
	defineUtilityFlags(fs, &utility)

	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			return err
		}
		utility.showHelp = true
	}

	if utility.showHelp {
		printStaticUsage(os.Stderr, version)
		return ErrExit
	}
	if utility.showVersion {
		fmt.Fprintln(os.Stdout, "mkstatic v"+version)
		return ErrExit
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if noMP3 {
		cfg.MP3Path = ""
	}
	applyDisplayFlags(&cfg.Display, &display)
	return nil
}

func printStaticUsage(w io.Writer, version string) {
	writeUsage(w, []usageLine{
		{"", "mkstatic v" + version + ": band-limited TV static generator"},
		{"", ""},
		{"  mkstatic [OPTIONS]", ""},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "WAV file (default: static.wav)"},
		{"  --mp3 <path>", "MP3 file via ffmpeg (default: static.mp3)"},
		{"  --no-mp3", "Write the WAV only"},
		{"  --bitrate <rate>", "MP3 bitrate (default: 192k)"},
		{"", ""},
		{"Signal", ""},
		{"  --sample-rate <hz>", "Sample rate (default: 44100)"},
		{"  --duration <dur>", "Length, e.g. 1s, 500ms (default: 1s)"},
		{"  --low <hz>", "Low cutoff (default: 30)"},
		{"  --high <hz>", "High cutoff (default: 5000)"},
		{"  --order <n>", "Butterworth order (default: 4)"},
		{"  --attenuation <n>", "PCM divisor (default: 8)"},
		{"  --seed <n>", "Random seed (default: clock)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "System diagnostics (ffmpeg, libmp3lame)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}
