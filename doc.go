// SPDX-License-Identifier: MIT

// Package hydroroute turns a digitised catchment into control files for
// runoff-routing models.
//
// A catchment is drawn as four GIS layers: reach polylines, confluence
// points (one flagged as the outlet), basin polygons and basin centroids.
// hydroroute snaps every reach to its nearest nodes, orients the drainage
// network towards the outlet, walks it headwaters first and emits one
// action stream (START, ADD, STORE, GET, ROUTE, END) that each model
// format renders in its own text grammar.
//
// Packages:
//
//	geom/       planar distance, length, area, containment, coordinate window
//	catchment/  Node (basin or confluence), Reach, Catchment, Network
//	connect/    endpoint matching and outlet-first orientation
//	traverse/   Traveller: the depth-first cursor over a Network
//	control/    the action stream state machine
//	render/     RORB, URBS, URBS text and WBNM writers
//	layer/      GeoJSON layers and the entity builder
//	config/     YAML configuration and validation
//	cmd/hydroroute  the command-line tool
//
// Quick start:
//
//	c, _ := layer.NewBuilder().Catchment(sources)
//	n, _ := connect.Connect(c)
//	r, _ := render.New(render.FormatRORB, render.DefaultSettings())
//	files, _ := r.Render(n)
package hydroroute
