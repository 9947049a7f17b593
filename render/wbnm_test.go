// SPDX-License-Identifier: MIT

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/internal/testnet"
	"github.com/katalvlaran/hydroroute/render"
)

const wbnmChain = `#####START_PREAMBLE_BLOCK##########|###########|###########|###########|








#####END_PREAMBLE_BLOCK############|###########|###########|###########|


#####START_STATUS_BLOCK############|###########|###########|###########|



2021_000    
#####END_STATUS_BLOCK##############|###########|###########|###########|


#####START_DISPLAY_BLOCK###########|###########|###########|###########|
           0           0           0           0
none        
           0           0           0           0           0           0
#####END_DISPLAY_BLOCK#############|###########|###########|###########|


#####START_TOPOLOGY_BLOCK###########|###########|###########|###########|
           2 Catchment   
B2                   0.0      3000.0         0.0      1500.0 B1          
B1                   0.0      1000.0         0.0         0.0 SINK        
#####END_TOPOLOGY_BLOCK#############|###########|###########|###########|


#####START_SURFACES_BLOCK##########|###########|###########|###########|
        0.77         1.3         0.1
         -99
B2                 300.0         0.0
B1                 100.0         0.5
#####END_SURFACES_BLOCK############|###########|###########|###########|


#####START_FLOWPATHS_BLOCK#########|###########|###########|###########|
1
B1          
#####ROUTING
           1
#####END_FLOWPATHS_BLOCK###########|###########|###########|###########|


#####START_LOCAL_STRUCTURES_BLOCK##|###########|###########|###########|
0
#####END_LOCAL_STRUCTURES_BLOCK####|###########|###########|###########|


#####START_OUTLET_STRUCTURES_BLOCK#|###########|###########|###########|
0
#####END_OUTLET_STRUCTURES_BLOCK###|###########|###########|###########|


#####START_STORM_BLOCK#############|###########|###########|###########|
           1
#####START_STORM#1
1%AEP dura/patt spectrum  - losses 27/4 GLOBAL - ARF = Calculated from ARR
         1.0
         5.0
#####START_DESIGN_RAIN_ARR
         1.0          -1          -1          -1
IFD_DATA_IN_GAUGE_FILES
           2
sorell_lower
sorell_upper
PAT_DATA_IN_REGION_FILE
sorell_increments.csv
CAT_DATA_IN_CATCHMENT_FILE
sorell_catchment_data.txt
#####END_DESIGN_RAIN_ARR
#####START_CALC_RAINGAUGE_WEIGHTS
#####END_CALC_RAINGAUGE_WEIGHTS
#####START_LOSS_RATES
GLOBAL              27.0         4.0         0.0
#####END_LOSS_RATES
#####START_RECORDED_HYDROGRAPHS
           0
#####END_RECORDED_HYDROGRAPHS
#####START_IMPORTED_HYDROGRAPHS
           0
#####END_IMPORTED_HYDROGRAPHS
#####END_STORM#1
#####END_STORM_BLOCK###############|###########|###########|###########|`

func TestWBNM_Chain(t *testing.T) {
	arts, err := render.WBNM{Params: render.DefaultWBNMParams()}.Render(testnet.Chain(t))
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, ".wbn", arts[0].Ext)
	assert.Equal(t, wbnmChain, string(arts[0].Body))
}

// TestWBNM_Y checks both tributaries drain to the sink at the outlet and
// neither has a stream channel.
func TestWBNM_Y(t *testing.T) {
	arts, err := render.WBNM{Params: render.DefaultWBNMParams()}.Render(testnet.Y(t))
	require.NoError(t, err)
	body := string(arts[0].Body)
	assert.Contains(t, body, "B1               -1000.0      2000.0         0.0         0.0 SINK        \n")
	assert.Contains(t, body, "B2                1000.0      2000.0         0.0         0.0 SINK        \n")
	assert.Contains(t, body, "#####START_FLOWPATHS_BLOCK#########|###########|###########|###########|\n0\n#####END_FLOWPATHS")
}

// TestWBNM_EqualZeroAreas checks the outflow point falls halfway when both
// sub-areas have zero area.
func TestWBNM_EqualZeroAreas(t *testing.T) {
	n := testnet.Build(t,
		[]catchment.Node{catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{
			catchment.NewBasin("B1", 0, 100, 0, 0),
			catchment.NewBasin("B2", 0, 300, 0, 0),
		},
		testnet.Reach{Name: "R0", From: "B1", To: "C0"},
		testnet.Reach{Name: "R1", From: "B2", To: "B1"},
	)
	arts, err := render.WBNM{Params: render.DefaultWBNMParams()}.Render(n)
	require.NoError(t, err)
	assert.Contains(t, string(arts[0].Body), "B2                   0.0       300.0         0.0       200.0 B1          \n")
}

func TestWBNM_Overflow(t *testing.T) {
	p := render.DefaultWBNMParams()
	p.CatchmentName = strings.Repeat("x", 13)
	_, err := render.WBNM{Params: p}.Render(testnet.Chain(t))
	assert.ErrorIs(t, err, render.ErrFieldOverflow)

	n := testnet.Build(t,
		[]catchment.Node{catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{catchment.NewBasin("SubAreaNumber1", 0, 100, 1, 0)},
		testnet.Reach{Name: "R0", From: "SubAreaNumber1", To: "C0"},
	)
	_, err = render.WBNM{Params: render.DefaultWBNMParams()}.Render(n)
	assert.ErrorIs(t, err, render.ErrFieldOverflow)
}
