// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydroroute/config"
)

// app carries the root flags shared by every subcommand.
type app struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hydroroute",
		Short: "Generate runoff-routing model files from catchment GIS layers",
		Long: `hydroroute reads reach, confluence, basin and centroid layers,
connects them into a drainage network and writes control files for the
RORB, URBS and WBNM runoff-routing models.

Values come from the built-in defaults, then the --config file, then flags.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: text or json")

	root.AddCommand(newRenderCmd(a), newInspectCmd(a), newFormatsCmd())
	return root
}

// addLayerFlags registers the input layer flags on cmd.
func addLayerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("reaches", "", "reach polyline layer (GeoJSON)")
	f.String("confluences", "", "confluence point layer (GeoJSON)")
	f.String("basins", "", "basin polygon layer (GeoJSON)")
	f.String("centroids", "", "basin centroid point layer (GeoJSON)")
	f.Float64("snap", 0, "largest reach endpoint to node distance, 0 for no limit")
}

// load resolves the configuration for cmd and builds its logger.
// Only flags set on the command line override file values.
func (a *app) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return config.Config{}, nil, err
		}
	}

	flags := cmd.Flags()
	strs := map[string]*string{
		"reaches":     &cfg.Layers.Reaches,
		"confluences": &cfg.Layers.Confluences,
		"basins":      &cfg.Layers.Basins,
		"centroids":   &cfg.Layers.Centroids,
		"out":         &cfg.Output.Dir,
		"name":        &cfg.Output.Name,
		"title":       &cfg.RORB.Title,
		"log-level":   &cfg.Log.Level,
		"log-format":  &cfg.Log.Format,
	}
	for name, dst := range strs {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("format") {
		cfg.Output.Formats, _ = flags.GetStringSlice("format")
	}
	if flags.Changed("snap") {
		cfg.Connect.SnapTolerance, _ = flags.GetFloat64("snap")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, cfg.Log.Logger(cmd.ErrOrStderr()), nil
}
