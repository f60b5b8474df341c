package config

// Lineup files let an operator keep a channel layout under version control
// instead of retyping channel lists. The format is chosen by extension.
//
//	# lineup.hcl
//	video_dir = "video"
//	output    = "video_filenames.js"
//	static    = [5, 10]
//	ccd       = concat([6], range(40, 43))
//
//	channels {
//	  min = 2
//	  max = 57
//	}

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gopkg.in/yaml.v3"
)

// lineupFile is the decoded form shared by all three formats. Pointer
// fields distinguish "absent" from a zero value.
type lineupFile struct {
	VideoDir   *string      `hcl:"video_dir,optional" yaml:"video_dir" toml:"video_dir"`
	Output     *string      `hcl:"output,optional" yaml:"output" toml:"output"`
	Prefix     *string      `hcl:"prefix,optional" yaml:"prefix" toml:"prefix"`
	Extensions []string     `hcl:"extensions,optional" yaml:"extensions" toml:"extensions"`
	Sort       *bool        `hcl:"sort,optional" yaml:"sort" toml:"sort"`
	Static     []int        `hcl:"static,optional" yaml:"static" toml:"static"`
	CCD        []int        `hcl:"ccd,optional" yaml:"ccd" toml:"ccd"`
	Channels   *lineupRange `hcl:"channels,block" yaml:"channels" toml:"channels"`
}

type lineupRange struct {
	Min *int `hcl:"min,optional" yaml:"min" toml:"min"`
	Max *int `hcl:"max,optional" yaml:"max" toml:"max"`
}

// lineupFunctions are callable from HCL lineup files.
var lineupFunctions = map[string]function.Function{
	"range":    stdlib.RangeFunc,
	"concat":   stdlib.ConcatFunc,
	"distinct": stdlib.DistinctFunc,
}

// LoadLineupFile decodes path and overlays the values it sets onto cfg.
// Relative video_dir and output paths are resolved against the file's
// directory.
func LoadLineupFile(path string, cfg *Config) error {
	var (
		lf  lineupFile
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		err = decodeHCL(path, &lf)
	case ".yaml", ".yml":
		err = decodeYAML(path, &lf)
	case ".toml":
		err = decodeTOML(path, &lf)
	default:
		return fmt.Errorf("unsupported lineup file %q (use .hcl, .yaml or .toml)", path)
	}
	if err != nil {
		return err
	}
	lf.apply(filepath.Dir(path), cfg)
	return nil
}

func decodeHCL(path string, lf *lineupFile) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse lineup file %s: %w", path, diags)
	}

	ctx := &hcl.EvalContext{Functions: lineupFunctions}
	if diags := gohcl.DecodeBody(file.Body, ctx, lf); diags.HasErrors() {
		return fmt.Errorf("failed to decode lineup file %s: %w", path, diags)
	}
	return nil
}

func decodeYAML(path string, lf *lineupFile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(lf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode lineup file %s: %w", path, err)
	}
	return nil
}

func decodeTOML(path string, lf *lineupFile) error {
	md, err := toml.DecodeFile(path, lf)
	if err != nil {
		return fmt.Errorf("failed to decode lineup file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in lineup file %s", undecoded[0].String(), path)
	}
	return nil
}

func (lf *lineupFile) apply(baseDir string, cfg *Config) {
	if lf.VideoDir != nil {
		cfg.VideoDir = NormalizeDirArg(relativeTo(baseDir, *lf.VideoDir))
	}
	if lf.Output != nil {
		cfg.OutputPath = relativeTo(baseDir, *lf.Output)
	}
	if lf.Prefix != nil {
		cfg.PathPrefix = *lf.Prefix
	}
	if len(lf.Extensions) > 0 {
		cfg.Extensions = append([]string(nil), lf.Extensions...)
	}
	if lf.Sort != nil {
		cfg.SortFiles = *lf.Sort
	}
	if lf.Static != nil {
		cfg.StaticChannels = joinInts(lf.Static)
	}
	if lf.CCD != nil {
		cfg.CCDChannels = joinInts(lf.CCD)
	}
	if lf.Channels != nil {
		if lf.Channels.Min != nil {
			cfg.MinChannel = *lf.Channels.Min
		}
		if lf.Channels.Max != nil {
			cfg.MaxChannel = *lf.Channels.Max
		}
	}
}

func relativeTo(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
