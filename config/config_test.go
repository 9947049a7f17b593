// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/config"
	"github.com/katalvlaran/hydroroute/render"
)

func withLayers(c config.Config) config.Config {
	c.Layers = config.LayersConfig{
		Reaches:     "r.geojson",
		Confluences: "c.geojson",
		Basins:      "b.geojson",
		Centroids:   "p.geojson",
	}
	return c
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, render.Formats(), c.Output.Formats)
	assert.Equal(t, "Reach Name", c.RORB.Title)
	assert.Equal(t, 90.0, c.Graphics.Scale)
	assert.Equal(t, 2.5, c.URBS.ContinuingLoss)

	// layer paths have no default
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
	assert.NoError(t, withLayers(c).Validate())
}

func TestDecode(t *testing.T) {
	doc := `
layers:
  reaches: in/reaches.geojson
  confluences: in/confluences.geojson
  basins: in/basins.geojson
  centroids: in/centroids.geojson
output:
  name: lower
  formats: [rorb, wbnm]
connect:
  snap_tolerance: 5
wbnm:
  catchment_name: Lower
log:
  level: debug
  format: json
`
	c, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "in/reaches.geojson", c.Layers.Reaches)
	assert.Equal(t, "lower", c.Output.Name)
	assert.Equal(t, ".", c.Output.Dir)
	assert.Equal(t, []string{"rorb", "wbnm"}, c.Output.Formats)
	assert.Equal(t, 5.0, c.Connect.SnapTolerance)
	assert.Equal(t, "Lower", c.WBNM.CatchmentName)
	// untouched nested values keep their defaults
	assert.Equal(t, 0.77, c.WBNM.NonlinExp)
	assert.Equal(t, 5.0, c.WBNM.Storm.TimeStep)
}

func TestDecode_Empty(t *testing.T) {
	c, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestDecode_Errors(t *testing.T) {
	_, err := config.Decode(strings.NewReader("output:\n  nmae: x\n"))
	assert.ErrorIs(t, err, config.ErrDecode)

	_, err = config.Decode(strings.NewReader("output: [\n"))
	assert.ErrorIs(t, err, config.ErrDecode)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"unknown format":    func(c *config.Config) { c.Output.Formats = []string{"mike11"} },
		"no formats":        func(c *config.Config) { c.Output.Formats = nil },
		"repeated format":   func(c *config.Config) { c.Output.Formats = []string{"rorb", "rorb"} },
		"name with slash":   func(c *config.Config) { c.Output.Name = "a/b" },
		"negative snap":     func(c *config.Config) { c.Connect.SnapTolerance = -1 },
		"zero scale":        func(c *config.Config) { c.Graphics.Scale = 0 },
		"negative loss":     func(c *config.Config) { c.URBS.InitialLoss = -2 },
		"log level":         func(c *config.Config) { c.Log.Level = "trace" },
		"log format":        func(c *config.Config) { c.Log.Format = "xml" },
		"wbnm name":         func(c *config.Config) { c.WBNM.CatchmentName = "ThirteenChars" },
		"wbnm time step":    func(c *config.Config) { c.WBNM.Storm.TimeStep = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := withLayers(config.Default())
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hydroroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rorb:\n  title: Lower Creek\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Lower Creek", c.RORB.Title)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettings(t *testing.T) {
	c := config.Default()
	c.Output.Name = "lower"
	c.RORB.Title = "Lower Creek"
	c.Graphics.Scale = 50
	c.URBS.InitialLoss = 10

	s, err := c.Settings()
	require.NoError(t, err)
	assert.Equal(t, "lower", s.Name)
	assert.Equal(t, "Lower Creek", s.Title)
	assert.Equal(t, 50.0, s.Scale)
	assert.Equal(t, 10.0, s.InitialLoss)
	assert.Nil(t, s.Table)

	table, err := os.ReadFile(filepath.Join("..", "render", "formatting.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, table, 0o644))
	c.Graphics.Table = path
	s, err = c.Settings()
	require.NoError(t, err)
	require.NotNil(t, s.Table)
	assert.Equal(t, "C ", s.Table.LeadingToken)

	require.NoError(t, os.WriteFile(path, []byte("node: [\n"), 0o644))
	_, err = c.Settings()
	assert.ErrorIs(t, err, render.ErrFormattingTable)

	c.Graphics.Table = filepath.Join(t.TempDir(), "none.yaml")
	_, err = c.Settings()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "node", "B1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "B1", rec["node"])

	buf.Reset()
	config.LogConfig{Level: "debug", Format: "text"}.Logger(&buf).Debug("walk")
	assert.Contains(t, buf.String(), "msg=walk")
}
