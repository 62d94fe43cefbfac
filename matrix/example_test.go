package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/matrix"
)

// ExampleCompose reads the node LRLL in both trees from one product matrix.
func ExampleCompose() {
	m, _ := matrix.Compose(lrpath.MustParse("LRLL"))
	fmt.Print(m)

	col, _ := m.MulCol(matrix.Ones) // [den, num]
	row, _ := m.MulRow(matrix.Ones) // [num, den]
	fmt.Printf("Stern-Brocot %d/%d\n", col[1], col[0])
	fmt.Printf("Calkin-Wilf  %d/%d\n", row[0], row[1])
	// Output:
	// [2, 5]
	// [1, 3]
	// Stern-Brocot 4/7
	// Calkin-Wilf  3/8
}
