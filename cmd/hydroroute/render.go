// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hydroroute/config"
	"github.com/katalvlaran/hydroroute/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write model files for the configured formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := renderAll(out, cfg, log); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			paths := []string{cfg.Layers.Reaches, cfg.Layers.Confluences, cfg.Layers.Basins, cfg.Layers.Centroids}
			return watchLayers(cmd.Context(), paths, log, func() {
				if err := renderAll(out, cfg, log); err != nil {
					log.Error("render failed", "err", err)
				}
			})
		},
	}

	addLayerFlags(cmd)
	f := cmd.Flags()
	f.StringP("out", "o", "", "output directory")
	f.String("name", "", "output base name")
	f.StringSlice("format", nil, "formats to render (default all)")
	f.String("title", "", "RORB control file title")
	f.BoolVarP(&watch, "watch", "w", false, "render again whenever an input layer changes")
	return cmd
}

// renderAll builds the network once and renders every configured format
// from it. Files are written only after every format rendered cleanly.
func renderAll(stdout io.Writer, cfg config.Config, log *slog.Logger) error {
	n, err := buildNetwork(cfg, log)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	formats := cfg.Output.Formats
	results := make([][]render.Artifact, len(formats))
	var g errgroup.Group
	for i, format := range formats {
		g.Go(func() error {
			r, err := render.New(format, settings)
			if err != nil {
				return err
			}
			arts, err := r.Render(n)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			results[i] = arts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	for i, arts := range results {
		for _, art := range arts {
			path := filepath.Join(cfg.Output.Dir, cfg.Output.Name+art.Ext)
			if err := os.WriteFile(path, art.Body, 0o644); err != nil {
				return err
			}
			log.Info("model file written", "format", formats[i], "path", path, "bytes", len(art.Body))
			fmt.Fprintln(stdout, path)
		}
	}
	return nil
}
