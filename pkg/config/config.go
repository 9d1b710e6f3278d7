// Package config holds the render settings shared by the CLI and an
// optional JSON config file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/tinyrender/pkg/export"
	"github.com/taigrr/tinyrender/pkg/math3d"
	"github.com/taigrr/tinyrender/pkg/render"
)

// DefaultModel is the bundled sample rendered when no model is given.
const DefaultModel = "obj/octahedron/octahedron.obj"

// Config holds all render settings.
type Config struct {
	// Output
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output"`

	// Input
	Model string `json:"model"`
	Fit   bool   `json:"fit"`

	// Render settings
	Mode  string `json:"mode"`
	Light string `json:"light"`
	Seed  int64  `json:"seed"`
}

// Flags holds CLI flag values that override config file settings.
// A nil field means the flag was not given on the command line.
type Flags struct {
	Width  *int
	Height *int
	Output *string
	Model  *string
	Fit    *bool
	Mode   *string
	Light  *string
	Seed   *int64
}

// Default returns the settings used when neither a config file nor flags
// say otherwise.
func Default() Config {
	return Config{
		Width:  800,
		Height: 800,
		Output: "output.png",
		Model:  DefaultModel,
		Mode:   render.ModeDepth.String(),
		Light:  "0,0,-1",
		Seed:   1,
	}
}

// Load reads a JSON config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Apply overrides settings with every flag that was set.
func (c *Config) Apply(flags Flags) {
	if flags.Width != nil {
		c.Width = *flags.Width
	}
	if flags.Height != nil {
		c.Height = *flags.Height
	}
	if flags.Output != nil {
		c.Output = *flags.Output
	}
	if flags.Model != nil {
		c.Model = *flags.Model
	}
	if flags.Fit != nil {
		c.Fit = *flags.Fit
	}
	if flags.Mode != nil {
		c.Mode = *flags.Mode
	}
	if flags.Light != nil {
		c.Light = *flags.Light
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Model == "" {
		return errors.New("config: no model given")
	}
	if _, err := export.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("config: output %s: %w", c.Output, err)
	}
	if _, err := c.RenderMode(); err != nil {
		return err
	}
	if _, err := c.LightVector(); err != nil {
		return err
	}
	return nil
}

// RenderMode parses Mode.
func (c *Config) RenderMode() (render.Mode, error) {
	m, err := render.ParseMode(c.Mode)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return m, nil
}

// LightVector parses Light ("x,y,z") into a unit vector.
func (c *Config) LightVector() (math3d.Vec3, error) {
	parts := strings.Split(c.Light, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("config: light %q: want three comma-separated numbers", c.Light)
	}

	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("config: light %q: %w", c.Light, err)
		}
		xyz[i] = v
	}

	light := math3d.V3(xyz[0], xyz[1], xyz[2])
	if light.Len() == 0 {
		return math3d.Vec3{}, fmt.Errorf("config: light %q has zero length", c.Light)
	}
	return light.Normalize(), nil
}
