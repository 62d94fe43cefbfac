package approx_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ratree/approx"
)

// ExamplePath reads twenty moves of e off the Stern-Brocot tree.
func ExamplePath() {
	p, _ := approx.Path(math.E, 20)
	fmt.Println(p)
	// Output:
	// RRLRRLRLLLLRLRRRRRRL
}

// ExampleFractionsIn prints every fifth approximant of e.
func ExampleFractionsIn() {
	fs, _ := approx.FractionsIn(math.E, approx.Range{Start: 5, Stop: 21, Step: 5})
	fmt.Println(fs)
	// Output:
	// [11/4 87/32 685/252 2721/1001]
}
