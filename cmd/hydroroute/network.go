// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/config"
	"github.com/katalvlaran/hydroroute/connect"
	"github.com/katalvlaran/hydroroute/layer"
)

// buildNetwork loads the four layers named by cfg and connects them.
func buildNetwork(cfg config.Config, log *slog.Logger) (*catchment.Network, error) {
	var src layer.Sources
	inputs := []struct {
		dst  *layer.Layer
		path string
	}{
		{&src.Reaches, cfg.Layers.Reaches},
		{&src.Confluences, cfg.Layers.Confluences},
		{&src.Basins, cfg.Layers.Basins},
		{&src.Centroids, cfg.Layers.Centroids},
	}
	for _, in := range inputs {
		l, err := layer.Load(in.path)
		if err != nil {
			return nil, err
		}
		log.Debug("layer loaded", "path", in.path, "features", l.Len())
		*in.dst = l
	}

	c, err := layer.NewBuilder(layer.WithLogger(log)).Catchment(src)
	if err != nil {
		return nil, err
	}

	opts := []connect.Option{connect.WithLogger(log)}
	if cfg.Connect.SnapTolerance > 0 {
		opts = append(opts, connect.WithSnapTolerance(cfg.Connect.SnapTolerance))
	}
	n, err := connect.Connect(c, opts...)
	if err != nil {
		return nil, err
	}
	log.Info("catchment connected",
		"nodes", c.NodeCount(),
		"reaches", c.ReachCount(),
		"outlet", c.Node(c.Outlet()).Name(),
	)
	return n, nil
}
