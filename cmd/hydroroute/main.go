// SPDX-License-Identifier: MIT

// Command hydroroute turns catchment GIS layers into runoff-routing model
// files for RORB, URBS and WBNM.
//
//	hydroroute render -c hydroroute.yaml
//	hydroroute render --reaches r.geojson --confluences c.geojson \
//	    --basins b.geojson --centroids p.geojson --format rorb -o out
//	hydroroute inspect -c hydroroute.yaml
//	hydroroute formats
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
