package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	DataDir   string `json:"data_dir"`
	OutputDir string `json:"output_dir"`

	// Segment charts
	SegmentSize float64 `json:"segment_size"`
	Inset       float64 `json:"inset"`
	InnerRatio  float64 `json:"inner_ratio"`

	// Bar charts
	BarWidth           float64 `json:"bar_width"`
	BarHeight          float64 `json:"bar_height"`
	ReservedLabelSpace float64 `json:"reserved_label_space"`
	BarGap             float64 `json:"bar_gap"`

	// Output
	Formats     []string `json:"formats"`
	Supersample int      `json:"supersample"`
	Workers     int      `json:"workers"`
}

// KnownFormats lists the formats the batch runner can write.
var KnownFormats = []string{"svg", "webp", "png", "tga"}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir   string
	OutputDir string
	Formats   string // comma separated
	Workers   int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Formats != "" {
		c.Formats = splitFormats(flags.Formats)
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.DataDir == "" {
		c.DataDir = "datasets"
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.DataDir, "charts")
	}

	// Defaults for render settings
	if c.SegmentSize <= 0 {
		c.SegmentSize = 320
	}
	if c.Inset < 0 {
		c.Inset = 0
	} else if c.Inset == 0 {
		c.Inset = 8
	}
	if c.InnerRatio < 0 || c.InnerRatio >= 1 {
		c.InnerRatio = 0
	}
	if c.BarWidth <= 0 {
		c.BarWidth = 480
	}
	if c.BarHeight <= 0 {
		c.BarHeight = 240
	}
	if c.ReservedLabelSpace <= 0 || c.ReservedLabelSpace > c.BarHeight {
		c.ReservedLabelSpace = 32
	}
	if c.BarGap <= 0 {
		c.BarGap = 12
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"svg", "webp"}
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports formats the batch runner cannot write.
func (c *Config) Validate() error {
	for _, f := range c.Formats {
		known := false
		for _, k := range KnownFormats {
			if f == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("config: unknown format %q (want one of %s)", f, strings.Join(KnownFormats, ", "))
		}
	}
	return nil
}

func splitFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
