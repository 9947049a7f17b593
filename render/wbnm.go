// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/geom"
	"github.com/katalvlaran/hydroroute/traverse"
)

// wbnmWidth is the width of every runfile value field.
const wbnmWidth = 12

// sink names the pseudo sub-area that receives outlet flow.
const sink = "SINK"

// Block banners. Each is padded to the runfile's fixed banner layout.
const (
	bannerTail = "|###########|###########|###########|"

	startPreamble  = "#####START_PREAMBLE_BLOCK##########" + bannerTail
	endPreamble    = "#####END_PREAMBLE_BLOCK############" + bannerTail
	startStatus    = "#####START_STATUS_BLOCK############" + bannerTail
	endStatus      = "#####END_STATUS_BLOCK##############" + bannerTail
	startDisplay   = "#####START_DISPLAY_BLOCK###########" + bannerTail
	endDisplay     = "#####END_DISPLAY_BLOCK#############" + bannerTail
	startTopology  = "#####START_TOPOLOGY_BLOCK###########" + bannerTail
	endTopology    = "#####END_TOPOLOGY_BLOCK#############" + bannerTail
	startSurfaces  = "#####START_SURFACES_BLOCK##########" + bannerTail
	endSurfaces    = "#####END_SURFACES_BLOCK############" + bannerTail
	startFlowpaths = "#####START_FLOWPATHS_BLOCK#########" + bannerTail
	endFlowpaths   = "#####END_FLOWPATHS_BLOCK###########" + bannerTail
	startLocal     = "#####START_LOCAL_STRUCTURES_BLOCK##" + bannerTail
	endLocal       = "#####END_LOCAL_STRUCTURES_BLOCK####" + bannerTail
	startOutlet    = "#####START_OUTLET_STRUCTURES_BLOCK#" + bannerTail
	endOutlet      = "#####END_OUTLET_STRUCTURES_BLOCK###" + bannerTail
	startStorm     = "#####START_STORM_BLOCK#############" + bannerTail
	endStorm       = "#####END_STORM_BLOCK###############" + bannerTail
)

// StormTemplate fills the storm block. The block is a starting point to be
// completed by hand in the runfile.
type StormTemplate struct {
	Title          string   `yaml:"title"`
	RainFactor     float64  `yaml:"rain_factor"`
	TimeStep       float64  `yaml:"time_step" validate:"gt=0"`
	Gauges         []string `yaml:"gauges" validate:"dive,required,max=80"`
	PatternFile    string   `yaml:"pattern_file"`
	CatchmentFile  string   `yaml:"catchment_file"`
	LossScheme     string   `yaml:"loss_scheme" validate:"max=12"`
	InitialLoss    float64  `yaml:"initial_loss" validate:"gte=0"`
	ContinuingLoss float64  `yaml:"continuing_loss" validate:"gte=0"`
	ImperviousLoss float64  `yaml:"impervious_loss" validate:"gte=0"`
}

// WBNMParams are the runfile values not derived from the catchment.
type WBNMParams struct {
	Version           string        `yaml:"version" validate:"required,max=12"`
	CatchmentName     string        `yaml:"catchment_name" validate:"required,max=12"`
	NonlinExp         float64       `yaml:"nonlin_exp" validate:"gt=0"`
	LagParam          float64       `yaml:"lag_param" validate:"gt=0"`
	ImpLagFactor      float64       `yaml:"imp_lag_factor" validate:"gte=0"`
	DischargeSwitch   int           `yaml:"discharge_switch"`
	StreamRoutingType string        `yaml:"stream_routing_type" validate:"required,max=12"`
	StreamLagFactor   int           `yaml:"stream_lag_factor"`
	Storm             StormTemplate `yaml:"storm"`
}

// DefaultWBNMParams returns the stock runfile values.
func DefaultWBNMParams() WBNMParams {
	return WBNMParams{
		Version:           "2021_000",
		CatchmentName:     "Catchment",
		NonlinExp:         0.77,
		LagParam:          1.3,
		ImpLagFactor:      0.1,
		DischargeSwitch:   -99,
		StreamRoutingType: "#####ROUTING",
		StreamLagFactor:   1,
		Storm: StormTemplate{
			Title:          "1%AEP dura/patt spectrum  - losses 27/4 GLOBAL - ARF = Calculated from ARR",
			RainFactor:     1.0,
			TimeStep:       5.0,
			Gauges:         []string{"sorell_lower", "sorell_upper"},
			PatternFile:    "sorell_increments.csv",
			CatchmentFile:  "sorell_catchment_data.txt",
			LossScheme:     "GLOBAL",
			InitialLoss:    27.0,
			ContinuingLoss: 4.0,
			ImperviousLoss: 0.0,
		},
	}
}

// WBNM renders a WBNM runfile (.wbn).
type WBNM struct {
	Params WBNMParams
}

// Format implements Renderer.
func (WBNM) Format() string { return FormatWBNM }

// subArea is a basin as the runfile sees it.
type subArea struct {
	node   int
	name   string
	centre orb.Point
	area   float64
	fi     float64
	stream bool // has any upstream neighbour
	ds     int  // downstream basin, or traverse.End for the sink
	dsName string
	out    orb.Point
}

// Render implements Renderer.
func (w WBNM) Render(n *catchment.Network) ([]Artifact, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	subs, err := subAreas(n)
	if err != nil {
		return nil, err
	}

	f := &fields{}
	p := w.Params
	blocks := []func(){
		func() { f.raw(startPreamble + "\n" + strings.Repeat("\n", 8) + endPreamble) },
		func() {
			f.raw(startStatus + "\n" + strings.Repeat("\n", 3))
			f.line(p.Version)
			f.raw(endStatus)
		},
		func() {
			f.raw(startDisplay + "\n")
			f.line(0, 0, 0, 0)
			f.line("none")
			f.line(0, 0, 0, 0, 0, 0)
			f.raw(endDisplay)
		},
		func() {
			f.raw(startTopology + "\n")
			f.val(len(subs))
			f.raw(" ")
			f.line(p.CatchmentName)
			for _, s := range subs {
				f.val(s.name, round(s.centre[0], 3), round(s.centre[1], 3), round(s.out[0], 3), round(s.out[1], 3))
				f.raw(" ")
				f.line(s.dsName)
			}
			f.raw(endTopology)
		},
		func() {
			f.raw(startSurfaces + "\n")
			f.line(p.NonlinExp, p.LagParam, p.ImpLagFactor)
			f.line(p.DischargeSwitch)
			for _, s := range subs {
				f.line(s.name, round(s.area*100, 2), round(s.fi, 2))
			}
			f.raw(endSurfaces)
		},
		func() {
			f.raw(startFlowpaths + "\n")
			k := 0
			for _, s := range subs {
				if s.stream {
					k++
				}
			}
			f.raw(strconv.Itoa(k) + "\n")
			for _, s := range subs {
				if s.stream {
					f.line(s.name)
					f.line(p.StreamRoutingType)
					f.line(p.StreamLagFactor)
				}
			}
			f.raw(endFlowpaths)
		},
		func() { f.raw(startLocal + "\n0\n" + endLocal) },
		func() { f.raw(startOutlet + "\n0\n" + endOutlet) },
	}
	for _, blk := range blocks {
		blk()
		f.raw("\n\n\n")
	}
	w.storm(f)
	if f.err != nil {
		return nil, f.err
	}

	return []Artifact{{Ext: ".wbn", Body: []byte(f.b.String())}}, nil
}

func (w WBNM) storm(f *fields) {
	s := w.Params.Storm
	f.raw(startStorm + "\n")
	f.line(1)
	f.raw("#####START_STORM#1\n" + s.Title + "\n")
	f.line(s.RainFactor)
	f.line(s.TimeStep)
	f.raw("#####START_DESIGN_RAIN_ARR\n")
	f.line(1.0, -1, -1, -1)
	f.raw("IFD_DATA_IN_GAUGE_FILES\n")
	f.line(len(s.Gauges))
	for _, g := range s.Gauges {
		f.raw(g + "\n")
	}
	f.raw("PAT_DATA_IN_REGION_FILE\n" + s.PatternFile + "\n")
	f.raw("CAT_DATA_IN_CATCHMENT_FILE\n" + s.CatchmentFile + "\n")
	f.raw("#####END_DESIGN_RAIN_ARR\n")
	f.raw("#####START_CALC_RAINGAUGE_WEIGHTS\n#####END_CALC_RAINGAUGE_WEIGHTS\n")
	f.raw("#####START_LOSS_RATES\n")
	f.line(s.LossScheme, s.InitialLoss, s.ContinuingLoss, s.ImperviousLoss)
	f.raw("#####END_LOSS_RATES\n")
	f.raw("#####START_RECORDED_HYDROGRAPHS\n")
	f.line(0)
	f.raw("#####END_RECORDED_HYDROGRAPHS\n")
	f.raw("#####START_IMPORTED_HYDROGRAPHS\n")
	f.line(0)
	f.raw("#####END_IMPORTED_HYDROGRAPHS\n")
	f.raw("#####END_STORM#1\n")
	f.raw(endStorm)
}

// subAreas lists the basins of n in NextAbsolute order with their
// downstream sub-area and outflow point.
func subAreas(n *catchment.Network) ([]subArea, error) {
	tr, err := traverse.New(n)
	if err != nil {
		return nil, err
	}
	var subs []subArea
	index := map[int]int{}
	tr.Next()
	for !tr.Done() {
		pos := tr.Position()
		if nd := tr.Node(pos); nd.IsBasin() {
			index[pos] = len(subs)
			subs = append(subs, subArea{
				node:   pos,
				name:   nd.Name(),
				centre: nd.Point(),
				area:   nd.Area(),
				fi:     nd.FI(),
				stream: len(tr.Up(pos)) > 0,
				ds:     downstreamBasin(tr, pos),
			})
		}
		tr.NextAbsolute()
	}

	outlet := tr.Node(n.Outlet()).Point()
	for i := range subs {
		s := &subs[i]
		if s.ds == traverse.End {
			s.dsName, s.out = sink, outlet
			continue
		}
		j, ok := index[s.ds]
		if !ok {
			return nil, fmt.Errorf("render: sub-area %q drains to unvisited node %q", s.name, tr.Node(s.ds).Name())
		}
		d := subs[j]
		alpha := 0.5
		if sum := s.area + d.area; sum != 0 {
			alpha = s.area / sum
		}
		s.dsName = d.name
		s.out = geom.Lerp(s.centre, d.centre, alpha)
	}

	return subs, nil
}

// downstreamBasin follows Down from i past confluences to the next basin.
// Reaching the outlet returns traverse.End.
func downstreamBasin(tr *traverse.Traveller, i int) int {
	d := tr.Down(i)
	for steps := 0; d != traverse.End && steps <= tr.Network().Catchment().NodeCount(); steps++ {
		nd := tr.Node(d)
		if nd.IsBasin() {
			return d
		}
		if nd.IsOutlet() {
			return traverse.End
		}
		d = tr.Down(d)
	}
	return traverse.End
}

// fields accumulates runfile text and the first formatting error.
type fields struct {
	b   strings.Builder
	err error
}

func (f *fields) raw(s string) { f.b.WriteString(s) }

// val writes each value as a 12-character field: numbers right-justified,
// text left-justified.
func (f *fields) val(vs ...any) {
	for _, v := range vs {
		var s string
		right := true
		switch x := v.(type) {
		case int:
			s = strconv.Itoa(x)
		case float64:
			s = shortest(x)
		case string:
			s, right = x, false
		default:
			s = fmt.Sprint(x)
		}
		out, err := pad(s, wbnmWidth, right)
		if err != nil && f.err == nil {
			f.err = err
		}
		f.b.WriteString(out)
	}
}

func (f *fields) line(vs ...any) {
	f.val(vs...)
	f.b.WriteString("\n")
}
