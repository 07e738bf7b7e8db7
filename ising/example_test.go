package ising_test

import (
	"fmt"

	"github.com/katalvlaran/qlp/ising"
	"github.com/katalvlaran/qlp/matrix"
)

func ExampleFromMatrix() {
	q, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 0}})
	m, err := ising.FromMatrix(q)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Couplings())
	fmt.Println(m.H, m.G)
	// Output:
	// [{0 1 0.5}]
	// [1 0.5] 1
}
