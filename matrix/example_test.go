package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prodnet/matrix"
)

// ExampleFactorize factorizes once and solves for two right-hand sides.
func ExampleFactorize() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{30, 0},
		{-30, 20},
	})
	f, err := matrix.Factorize(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range [][]float64{{0, 20}, {30, 40}} {
		x, _ := f.Solve(b)
		fmt.Printf("b=%v x=%.2f\n", b, x)
	}
	// Output:
	// b=[0 20] x=[0.00 1.00]
	// b=[30 40] x=[1.00 3.50]
}

// ExampleFactorize_singular shows how a singular matrix is reported.
func ExampleFactorize_singular() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Factorize(a)

	var pe *matrix.PivotError
	fmt.Println(errors.Is(err, matrix.ErrSingular), errors.As(err, &pe), pe.Column)
	// Output:
	// true true 1
}
