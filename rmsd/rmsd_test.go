package rmsd

import (
	"fmt"
	"testing"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pdb"
)

func ExampleRMSD() {
	a := []pdb.Coords{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	// b is a copy of a translated by (3, 4, 0), so every pairwise
	// deviation is 5.
	b := []pdb.Coords{
		{X: 3, Y: 4, Z: 0},
		{X: 4, Y: 4, Z: 0},
	}
	fmt.Printf("RMSD: %f\n", RMSD(a, b))
	fmt.Printf("RMSD: %f\n", RMSD(a, a))
	// Output:
	// RMSD: 5.000000
	// RMSD: 0.000000
}

func TestRMSDUnequalLengthsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unequal coordinate set lengths must panic.")
		}
	}()
	RMSD(make([]pdb.Coords, 2), make([]pdb.Coords, 3))
}

func TestRMSDEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Empty coordinate sets must panic.")
		}
	}()
	RMSD(nil, nil)
}
