package vptree_test

import (
	"fmt"

	"github.com/Tomyyy-1337/vptree"
)

// Example demonstrates building a tree and running the three named query
// families against it.
func Example() {
	points := []vptree.DataPoint{
		{Point: vptree.Point{X: 0, Y: 0}, Data: "A"},
		{Point: vptree.Point{X: 1, Y: 1}, Data: "B"},
		{Point: vptree.Point{X: 2, Y: 2}, Data: "C"},
		{Point: vptree.Point{X: 3, Y: 3}, Data: "D"},
	}

	tree := vptree.New(points)
	q := vptree.DataPoint{Point: vptree.Point{X: 2.1, Y: 2.5}}

	nearest, _ := vptree.NearestNeighbor[vptree.DataPoint, vptree.DataPoint](tree, q)
	fmt.Println("nearest:", nearest.Data)

	kNearest := vptree.KNearestSorted[vptree.DataPoint, vptree.DataPoint](tree, q, 2)
	for _, p := range kNearest {
		fmt.Println("k-nearest:", p.Data)
	}

	// Output:
	// nearest: C
	// k-nearest: C
	// k-nearest: D
}

// Example_heterogeneousQuery demonstrates querying a tree of DataPoint with
// a bare Point target, carrying none of DataPoint's payload.
func Example_heterogeneousQuery() {
	points := []vptree.DataPoint{
		{Point: vptree.Point{X: 0, Y: 0}, Data: "A"},
		{Point: vptree.Point{X: 1, Y: 1}, Data: "B"},
		{Point: vptree.Point{X: 2, Y: 2}, Data: "C"},
		{Point: vptree.Point{X: 3, Y: 3}, Data: "D"},
	}

	tree := vptree.New(points)
	q := vptree.Point{X: 2.1, Y: 2.5}

	nearest, _ := vptree.NearestNeighbor[vptree.DataPoint, vptree.Point](tree, q)
	fmt.Println("nearest:", nearest.Data)

	// Output:
	// nearest: C
}

// Example_parallelBuild demonstrates building a large tree across multiple
// workers and reading back its size.
func Example_parallelBuild() {
	points := make([]vptree.DataPoint, 0, 1000)
	for i := 0; i < 1000; i++ {
		points = append(points, vptree.DataPoint{
			Point: vptree.Point{X: float64(i % 50), Y: float64(i / 50)},
			Data:  fmt.Sprintf("item-%d", i),
		})
	}

	tree := vptree.NewParallel(points, 4)
	fmt.Println("size:", tree.Len())

	// Output:
	// size: 1000
}

// Example_query demonstrates the generalized Query descriptor, combining an
// item cap with a distance cap in a single traversal.
func Example_query() {
	points := []vptree.DataPoint{
		{Point: vptree.Point{X: 0, Y: 0}, Data: "A"},
		{Point: vptree.Point{X: 1, Y: 1}, Data: "B"},
		{Point: vptree.Point{X: 2, Y: 2}, Data: "C"},
		{Point: vptree.Point{X: 3, Y: 3}, Data: "D"},
	}

	tree := vptree.New(points)
	q := vptree.DataPoint{Point: vptree.Point{X: 2.1, Y: 2.5}}

	results := vptree.Query[vptree.DataPoint, vptree.DataPoint](
		tree, q,
		vptree.WithMaxItems(2),
		vptree.WithMaxDistance(2.0),
		vptree.WithSorted(),
	)
	for _, p := range results {
		fmt.Println(p.Data)
	}

	// Output:
	// C
	// D
}
