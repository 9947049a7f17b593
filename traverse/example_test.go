// SPDX-License-Identifier: MIT

package traverse_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/connect"
	"github.com/katalvlaran/hydroroute/traverse"
)

// ExampleTraveller_Next walks two headwater basins joining at C1 above the
// outlet C0. Every branch is climbed to its top before the cursor returns
// to the junction; a junction is revisited once per tributary.
func ExampleTraveller_Next() {
	r0, _ := catchment.NewReach("R0", orb.LineString{{0, 10}, {0, 0}}, catchment.Natural, 0)
	r1, _ := catchment.NewReach("R1", orb.LineString{{-5, 20}, {0, 10}}, catchment.Natural, 0)
	r2, _ := catchment.NewReach("R2", orb.LineString{{5, 20}, {0, 10}}, catchment.Natural, 0)
	c, _ := catchment.New(
		[]catchment.Node{
			catchment.NewConfluence("C0", 0, 0, true),
			catchment.NewConfluence("C1", 0, 10, false),
		},
		[]catchment.Node{
			catchment.NewBasin("B1", -5, 20, 1, 0),
			catchment.NewBasin("B2", 5, 20, 1, 0),
		},
		[]catchment.Reach{r0, r1, r2},
	)
	n, _ := connect.Connect(c)

	tr, err := traverse.New(n)
	if err != nil {
		fmt.Println(err)
		return
	}
	for !tr.Done() {
		if i := tr.Next(); i != traverse.End {
			fmt.Println(tr.Node(i).Name())
		}
	}
	fmt.Println("end")
	// Output:
	// B1
	// C1
	// B2
	// C1
	// C0
	// end
}
