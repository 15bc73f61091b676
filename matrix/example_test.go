package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
)

// ExampleSplit shows the quadrant layout and the Join round trip.
func ExampleSplit() {
	r := ring.MustNew(13)
	m, _ := matrix.NewFromRows(r, [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	q, _ := matrix.Split(m)
	fmt.Print(q[matrix.TopRight])

	back, _ := matrix.Join(q)
	fmt.Println(back.Equal(m))
	// Output:
	// [3, 4]
	// [7, 8]
	// true
}

// ExampleSub shows subtraction never yields negative representatives.
func ExampleSub() {
	r := ring.MustNew(13)
	a, _ := matrix.NewFromRows(r, [][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows(r, [][]int64{{5, 5}, {5, 5}})
	d, _ := matrix.Sub(a, b)
	fmt.Print(d)
	// Output:
	// [9, 10]
	// [11, 12]
}
