// Package main provides the narray command-line demo.
package main

import (
	"fmt"
	"os"

	"github.com/narray-ml/narray/array"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("narray %s\n", version)
		return
	}

	fmt.Printf("narray %s - minimal multidimensional arrays for Go\n\n", version)

	a, err := array.FromSlice([]float64{4, 7, 2, 6}, array.Shape{2, 2})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	det, _ := a.Det()
	fmt.Printf("A = %v, data %v\n", a, a.Data())
	fmt.Printf("det(A) = %v\n", det)

	inv, err := a.Inv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("inv(A) = %v\n", inv.Data())

	x, err := a.Solve(array.FromValues(1.0, 0.0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("solve(A, [1 0]) = %v\n", x.Data())
}
