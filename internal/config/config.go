package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// Config holds output paths and render settings for batch runs.
type Config struct {
	// Paths
	ScenariosFile string `json:"scenarios_file"`
	OutputDir     string `json:"output_dir"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`

	// Wave chart
	WaveMin    float64 `json:"wave_min"`
	WaveMax    float64 `json:"wave_max"`
	WavePeriod float64 `json:"wave_period"`
}

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
	ScenariosFile string
	OutputDir     string
	Format        string
	Size          int
	Workers       int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.ScenariosFile != "" {
		c.ScenariosFile = flags.ScenariosFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = filepath.Join(cwd, "renders")
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = "webp"
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.WaveMin == 0 && c.WaveMax == 0 {
		c.WaveMax = 1
	}
	if c.WavePeriod <= 0 {
		c.WavePeriod = 1
	}
}

// Validate reports settings Resolve cannot fix.
func (c *Config) Validate(formats []string) error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("config: unsupported format %q (want one of %s)", c.Format, strings.Join(formats, ", "))
	}
	if c.WaveMax <= c.WaveMin {
		return fmt.Errorf("config: wave_max %v must exceed wave_min %v", c.WaveMax, c.WaveMin)
	}
	return nil
}
