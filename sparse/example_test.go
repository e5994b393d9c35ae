package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsela/dense"
	"github.com/katalvlaran/sparsela/sparse"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTriplet_TimesVec
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply the sparse 2×3 matrix
//	  M = [[1, 0, 2],
//	       [0, 3, 0]]
//	by x = [1, 1, 2], computing y = 0·y + 1·M·x.
//
// Complexity: O(nnz) with atomic scatter into y.
func ExampleTriplet_TimesVec() {
	m, err := sparse.New(2, 3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer m.Close()
	_ = m.Fill([]int{0, 0, 1}, []int{0, 2, 1}, []float64{1, 2, 3})

	x, _ := dense.NewVector(3)
	defer x.Close()
	copy(x.LocalData(), []float64{1, 1, 2})
	y, _ := dense.NewVector(2)
	defer y.Close()

	if err = m.TimesVec(0, y, 1, x); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("y = %v\n", y.LocalData())
	// Output:
	// y = [5 3]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTriplet_RowOffsets
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build the row-start index of a 3×3 matrix whose rows hold 2, 1 and 1
//	nonzeros. offsets[i] is where row i begins; offsets[3] equals nnz.
func ExampleTriplet_RowOffsets() {
	m, _ := sparse.New(3, 3, 4)
	defer m.Close()
	_ = m.Fill([]int{0, 0, 1, 2}, []int{0, 2, 1, 2}, []float64{1, 2, 3, 4})

	off, err := m.RowOffsets()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("offsets = %v\n", off)
	// Output:
	// offsets = [0 2 3 4]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSymTriplet_TimesVec
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A symmetric matrix stores only its upper triangle. The stored
//	  [[1, 2],
//	   [·, 3]]
//	multiplies as the full [[1,2],[2,3]]: off-diagonal triplets contribute
//	to both mirrored positions, diagonals once.
func ExampleSymTriplet_TimesVec() {
	s, _ := sparse.NewSym(2, 3)
	defer s.Close()
	_ = s.Fill([]int{0, 0, 1}, []int{0, 1, 1}, []float64{1, 2, 3})

	x, _ := dense.NewVector(2)
	defer x.Close()
	copy(x.LocalData(), []float64{1, 1})
	y, _ := dense.NewVector(2)
	defer y.Close()

	_ = s.TimesVec(0, y, 1, x)
	fmt.Printf("y = %v\n", y.LocalData())
	// Output:
	// y = [3 5]
}
