// Package grid derives the docking search volume from a set of atomic
// coordinates. The volume is an axis-aligned box enclosing the coordinates
// with a configurable amount of padding on each side.
package grid

import (
	"fmt"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pdb"
)

// MinSize is the smallest allowed box edge, in Angstroms. The floor is
// applied per axis, so even a single-atom ligand yields a searchable volume.
const MinSize = 15.0

// Box is a docking search volume: a center point and the box width along
// each axis.
type Box struct {
	Center pdb.Coords
	Size   pdb.Coords
}

// Compute derives the search volume from a coordinate set. The center is the
// per-axis arithmetic mean. The size per axis is (max - min) + 2*padding,
// floored at MinSize independently per axis. An empty coordinate set is an
// error: there is nothing to enclose, and the most likely cause is a wrong
// ligand residue name upstream.
func Compute(coords []pdb.Coords, padding float64) (Box, error) {
	if len(coords) == 0 {
		return Box{}, fmt.Errorf("cannot compute a search volume from an " +
			"empty coordinate set")
	}

	var sum pdb.Coords
	min, max := coords[0], coords[0]
	for _, c := range coords {
		sum.X += c.X
		sum.Y += c.Y
		sum.Z += c.Z

		min.X = minf(min.X, c.X)
		min.Y = minf(min.Y, c.Y)
		min.Z = minf(min.Z, c.Z)
		max.X = maxf(max.X, c.X)
		max.Y = maxf(max.Y, c.Y)
		max.Z = maxf(max.Z, c.Z)
	}

	n := float64(len(coords))
	return Box{
		Center: pdb.Coords{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n},
		Size: pdb.Coords{
			X: maxf(max.X-min.X+2*padding, MinSize),
			Y: maxf(max.Y-min.Y+2*padding, MinSize),
			Z: maxf(max.Z-min.Z+2*padding, MinSize),
		},
	}, nil
}

// FromFile reads the atom coordinates of a reference ligand file and computes
// its search volume. The number of coordinates read is also returned so that
// callers can report it.
func FromFile(fileName string, padding float64) (Box, int, error) {
	coords, err := pdb.ReadCoords(fileName)
	if err != nil {
		return Box{}, 0, err
	}
	box, err := Compute(coords, padding)
	if err != nil {
		return Box{}, 0, err
	}
	return box, len(coords), nil
}

func (b Box) String() string {
	return fmt.Sprintf(
		"center=(%.2f, %.2f, %.2f) size=(%.2f, %.2f, %.2f)",
		b.Center.X, b.Center.Y, b.Center.Z, b.Size.X, b.Size.Y, b.Size.Z)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
