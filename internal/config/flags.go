package config

// This file implements CLI flag parsing and help text for channelsurf.
// Flags are grouped into channels, files, behavior, display, and utility.
// Negated flags (e.g. --no-sort) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrExit is returned by the flag parsers after --help or --version output;
// callers should exit with status 0.
var ErrExit = errors.New("exit requested")

// ParseFlags parses args (without the program name) into cfg. When
// --lineup names a file, the file is loaded first and the flags are applied
// again on top of it, so explicit flags always win.
func ParseFlags(cfg *Config, args []string, version string) error {
	n, fs, err := parseOnce(cfg, args)
	if err != nil {
		return err
	}

	if n.utility.showHelp {
		printUsage(os.Stderr, version)
		return ErrExit
	}
	if n.utility.showVersion {
		fmt.Fprintln(os.Stdout, "channelsurf v"+version)
		return ErrExit
	}

	if cfg.LineupFile != "" {
		if err := LoadLineupFile(cfg.LineupFile, cfg); err != nil {
			return err
		}
		if _, fs, err = parseOnce(cfg, args); err != nil {
			return err
		}
	}

	return parsePositionalArgs(fs, cfg)
}

// parseOnce builds a fresh FlagSet bound to cfg, parses args and applies
// the negated flags.
func parseOnce(cfg *Config, args []string) (*negatedFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("channelsurf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var negated negatedFlags
	defineChannelFlags(fs, cfg)
	defineFileFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, &cfg.Display, &negated.display)
	defineUtilityFlags(fs, &negated.utility)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			negated.utility.showHelp = true
			return &negated, fs, nil
		}
		return nil, nil, err
	}

	applyNegatedFlags(cfg, &negated)
	return &negated, fs, nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	noSort  bool
	display displayFlags
	utility utilityFlags
}

// displayFlags are shared by both commands.
type displayFlags struct {
	forceColor bool
	noColor    bool
}

// utilityFlags trigger an early exit after printing.
type utilityFlags struct {
	showVersion bool
	showHelp    bool
}

// defineChannelFlags registers -s/--static, --ccd, --min-channel, --max-channel.
func defineChannelFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.StaticChannels, "static", cfg.StaticChannels, "Comma-separated static channels")
	fs.StringVar(&cfg.StaticChannels, "s", cfg.StaticChannels, "Same as --static")
	fs.StringVar(&cfg.CCDChannels, "ccd", cfg.CCDChannels, "Comma-separated camera (ccd) channels")
	fs.IntVar(&cfg.MinChannel, "min-channel", cfg.MinChannel, "Lowest channel number")
	fs.IntVar(&cfg.MaxChannel, "max-channel", cfg.MaxChannel, "Highest channel number")
}

// defineFileFlags registers -o/--output, --prefix, --ext, -L/--lineup.
func defineFileFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Output JavaScript file")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "Same as --output")
	fs.StringVar(&cfg.PathPrefix, "prefix", cfg.PathPrefix, "Path prefix written before each filename")
	fs.Var(&listValue{&cfg.Extensions}, "ext", "Comma-separated media extensions")
	fs.StringVar(&cfg.LineupFile, "lineup", cfg.LineupFile, "Lineup file (.hcl, .yaml, .toml)")
	fs.StringVar(&cfg.LineupFile, "L", cfg.LineupFile, "Same as --lineup")
}

// defineBehaviorFlags registers --no-sort and -d/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noSort, "no-sort", false, "Keep raw directory order instead of sorting")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Print the declaration instead of writing it")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, d *Display, n *displayFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&d.Verbose, "verbose", d.Verbose, "Verbose output")
	fs.BoolVar(&d.Verbose, "v", d.Verbose, "Same as --verbose")
	fs.StringVar(&d.LogFile, "log", d.LogFile, "Append logs to file")
	fs.StringVar(&d.LogFile, "l", d.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *utilityFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noSort -> SortFiles=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noSort {
		cfg.SortFiles = false
	}
	applyDisplayFlags(&cfg.Display, &n.display)
}

func applyDisplayFlags(d *Display, n *displayFlags) {
	if n.noColor {
		d.ColorMode = ColorNever
	} else if n.forceColor {
		d.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets VideoDir from the optional positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.VideoDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one video_dir argument (got %d)", len(args))
	}
}

// parseInt parses a string as an integer; returns a clear error on failure.
func parseInt(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number (got %q)", name, s)
	}
	return n, nil
}

// usageLine is one row of the column-aligned help text.
type usageLine struct {
	flags string
	desc  string
}

// printUsage writes the help text to w.
func printUsage(w io.Writer, version string) {
	writeUsage(w, []usageLine{
		{"", "channelsurf v" + version + ": channel lineup generator for the retro TV player"},
		{"", ""},
		{"  channelsurf [OPTIONS] [video_dir]", ""},
		{"", ""},
		{"Channels", ""},
		{"  -s, --static <list>", "Static channels, e.g. 5,10 (default: none)"},
		{"  --ccd <list>", "Camera channels, e.g. 6,11 (default: none)"},
		{"  --min-channel <n>", "Lowest channel (default: 2)"},
		{"  --max-channel <n>", "Highest channel (default: 57)"},
		{"", ""},
		{"Files", ""},
		{"  -o, --output <path>", "Output file (default: video_filenames.js)"},
		{"  --prefix <dir>", "Path prefix for videos (default: video)"},
		{"  --ext <list>", "Media extensions (default: .mp4)"},
		{"  -L, --lineup <path>", "Load settings from .hcl, .yaml or .toml"},
		{"", ""},
		{"Behavior", ""},
		{"  --no-sort", "Keep raw directory order"},
		{"  -d, --dry-run", "Print the declaration to stdout"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

func writeUsage(w io.Writer, lines []usageLine) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// listValue adapts a comma-separated flag to a string slice. Each Set
// replaces the whole list.
type listValue struct {
	p *[]string
}

func (l *listValue) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l *listValue) Set(s string) error {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return fmt.Errorf("empty list %q", s)
	}
	*l.p = items
	return nil
}
