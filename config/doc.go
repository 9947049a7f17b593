// SPDX-License-Identifier: MIT

// Package config loads and validates the hydroroute run configuration.
//
// A configuration is a YAML document decoded over Default, so a file only
// names the values it changes:
//
//	layers:
//	  reaches: data/reaches.geojson
//	  confluences: data/confluences.geojson
//	  basins: data/basins.geojson
//	  centroids: data/centroids.geojson
//	output:
//	  dir: out
//	  name: lower_creek
//	  formats: [rorb, wbnm]
//	connect:
//	  snap_tolerance: 5
//	log:
//	  level: debug
//
// Unknown keys are rejected. Validate checks value ranges and format names
// with go-playground/validator struct tags.
package config
