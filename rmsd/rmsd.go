// Package rmsd computes the root mean square deviation between two
// equal-length sets of atomic coordinates.
//
// Unlike structure-alignment RMSD, no superposition is performed: docked
// poses and the crystallographic reference ligand already share the
// receptor's coordinate frame, and the deviation in that frame is exactly
// the quantity of interest for a redocking check.
package rmsd

import (
	"fmt"
	"math"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pdb"
)

// RMSD computes the root mean square deviation between two coordinate sets
// in the same reference frame, pairing atoms by position in the slice.
// The sets must be of equal, non-zero length; a violation panics, since it
// is a caller bug rather than a data condition.
func RMSD(a, b []pdb.Coords) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("Coordinate sets have unequal lengths: %d and %d.",
			len(a), len(b)))
	}
	if len(a) == 0 {
		panic("Cannot compute the RMSD of empty coordinate sets.")
	}

	sum := 0.0
	for i := range a {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		dz := a[i].Z - b[i].Z
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / float64(len(a)))
}
