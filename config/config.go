// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hydroroute/geom"
	"github.com/katalvlaran/hydroroute/render"
)

// Sentinel errors for configuration.
var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrDecode indicates a malformed YAML document.
	ErrDecode = errors.New("config: cannot decode")
)

// validate is shared by every Validate call.
var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	// Layers names the four GeoJSON inputs.
	Layers LayersConfig `yaml:"layers"`

	// Output controls where and what is written.
	Output OutputConfig `yaml:"output"`

	// Connect tunes endpoint matching.
	Connect ConnectConfig `yaml:"connect"`

	// RORB holds control-file settings.
	RORB RORBConfig `yaml:"rorb"`

	// Graphics places URBS graphics coordinates.
	Graphics GraphicsConfig `yaml:"graphics"`

	// URBS holds loss values for the URBS text catchment table.
	URBS URBSConfig `yaml:"urbs"`

	// WBNM holds runfile parameters.
	WBNM render.WBNMParams `yaml:"wbnm"`

	// Log selects the log level and handler.
	Log LogConfig `yaml:"log"`
}

// LayersConfig holds input file paths.
type LayersConfig struct {
	Reaches     string `yaml:"reaches" validate:"required"`
	Confluences string `yaml:"confluences" validate:"required"`
	Basins      string `yaml:"basins" validate:"required"`
	Centroids   string `yaml:"centroids" validate:"required"`
}

// OutputConfig controls the rendered files.
type OutputConfig struct {
	// Dir receives the files. Created if missing.
	Dir string `yaml:"dir" validate:"required"`

	// Name is the base file name; each format appends its own extension.
	Name string `yaml:"name" validate:"required,excludesall=/\\"`

	// Formats lists the formats to render.
	Formats []string `yaml:"formats" validate:"min=1,unique,dive,oneof=rorb urbs wbnm urbs-text"`
}

// ConnectConfig tunes endpoint matching.
type ConnectConfig struct {
	// SnapTolerance is the largest endpoint-to-node distance accepted,
	// in layer units. Zero disables the limit.
	SnapTolerance float64 `yaml:"snap_tolerance" validate:"gte=0"`
}

// RORBConfig holds control-file settings.
type RORBConfig struct {
	Title string `yaml:"title" validate:"required"`
}

// GraphicsConfig places URBS graphics coordinates in [Shift, Shift+Scale].
type GraphicsConfig struct {
	Scale float64 `yaml:"scale" validate:"gt=0"`
	Shift float64 `yaml:"shift"`

	// Table is an optional formatting table file replacing the embedded one.
	Table string `yaml:"table"`
}

// URBSConfig holds loss values for the URBS text catchment table.
type URBSConfig struct {
	InitialLoss    float64 `yaml:"initial_loss" validate:"gte=0"`
	ContinuingLoss float64 `yaml:"continuing_loss" validate:"gte=0"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns a configuration with every optional value set.
// Layer paths are left empty.
func Default() Config {
	s := render.DefaultSettings()
	return Config{
		Output: OutputConfig{
			Dir:     ".",
			Name:    s.Name,
			Formats: render.Formats(),
		},
		RORB: RORBConfig{Title: s.Title},
		Graphics: GraphicsConfig{
			Scale: geom.DefaultScale,
			Shift: geom.DefaultShift,
		},
		URBS: URBSConfig{
			InitialLoss:    s.InitialLoss,
			ContinuingLoss: s.ContinuingLoss,
		},
		WBNM: s.WBNM,
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path and decodes it over Default. The result is not validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a YAML document over Default. An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c, nil
}

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Settings maps c onto render settings, loading the graphics table file
// when one is named.
func (c Config) Settings() (render.Settings, error) {
	s := render.DefaultSettings()
	s.Name = c.Output.Name
	s.Title = c.RORB.Title
	s.Scale = c.Graphics.Scale
	s.Shift = c.Graphics.Shift
	s.InitialLoss = c.URBS.InitialLoss
	s.ContinuingLoss = c.URBS.ContinuingLoss
	s.WBNM = c.WBNM

	if c.Graphics.Table != "" {
		f, err := os.Open(c.Graphics.Table)
		if err != nil {
			return render.Settings{}, fmt.Errorf("config: graphics table: %w", err)
		}
		defer f.Close()
		if s.Table, err = render.LoadTable(f); err != nil {
			return render.Settings{}, err
		}
	}
	return s, nil
}

// Logger builds a logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
