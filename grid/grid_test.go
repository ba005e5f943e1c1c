package grid

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pdb"
)

func ExampleCompute() {
	// Two atoms 10 Angstroms apart along X with 10 Angstroms of padding:
	// the X edge is 10+2*10 = 30 while Y and Z pad out to 20, all above
	// the 15 Angstrom floor.
	box, _ := Compute([]pdb.Coords{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}, 10.0)
	fmt.Println(box)
	// Output:
	// center=(5.00, 0.00, 0.00) size=(30.00, 20.00, 20.00)
}

func TestComputeSingleAtom(t *testing.T) {
	atom := pdb.Coords{X: 1.5, Y: -2.5, Z: 3.25}

	// With small padding, every edge collapses to the floor.
	box, err := Compute([]pdb.Coords{atom}, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if box.Center != atom {
		t.Fatalf("Center is %v but the only atom is at %v.", box.Center, atom)
	}
	if box.Size != (pdb.Coords{X: MinSize, Y: MinSize, Z: MinSize}) {
		t.Fatalf("Size is %v but every edge should be floored at %v.",
			box.Size, MinSize)
	}

	// With large padding, size = 2*padding per axis beats the floor.
	box, err = Compute([]pdb.Coords{atom}, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if box.Size != (pdb.Coords{X: 20, Y: 20, Z: 20}) {
		t.Fatalf("Size is %v but should be 2*padding per axis.", box.Size)
	}
}

func TestComputeEmpty(t *testing.T) {
	if _, err := Compute(nil, 10.0); err == nil {
		t.Fatal("An empty coordinate set must be an error.")
	}
}

func TestComputeFloorPerAxis(t *testing.T) {
	// A ligand elongated along X only. With padding 1, the X edge keeps its
	// physical extent while Y and Z are floored independently.
	box, err := Compute([]pdb.Coords{
		{X: 0, Y: 0, Z: 0},
		{X: 40, Y: 1, Z: 0.5},
	}, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if box.Size.X != 42 {
		t.Fatalf("X edge is %f but should be 40+2*1.", box.Size.X)
	}
	if box.Size.Y != MinSize || box.Size.Z != MinSize {
		t.Fatalf("Y and Z edges are %f and %f but both should be floored "+
			"at %f.", box.Size.Y, box.Size.Z, float64(MinSize))
	}
}

func TestComputeSizeInvariant(t *testing.T) {
	for i := 0; i < 1000; i++ {
		coords := randomCoords(1 + rand.Intn(50))
		padding := rand.Float64() * 15

		box, err := Compute(coords, padding)
		if err != nil {
			t.Fatal(err)
		}
		for _, edge := range []float64{box.Size.X, box.Size.Y, box.Size.Z} {
			if edge < MinSize {
				t.Fatalf("Edge %f is below the %f floor.",
					edge, float64(MinSize))
			}
		}
	}
}

// TestComputeCenter cross-checks the hand-rolled centroid against the same
// quantity computed with go.matrix: (1/n) * ones(1,n) x coords(n,3).
func TestComputeCenter(t *testing.T) {
	for i := 0; i < 100; i++ {
		coords := randomCoords(1 + rand.Intn(50))

		box, err := Compute(coords, 10.0)
		if err != nil {
			t.Fatal(err)
		}

		n := len(coords)
		ones := make([]float64, n)
		flat := make([]float64, 3*n)
		for j, c := range coords {
			ones[j] = 1
			flat[j*3+0] = c.X
			flat[j*3+1] = c.Y
			flat[j*3+2] = c.Z
		}
		sums, err := matrix.MakeDenseMatrix(ones, 1, n).TimesDense(
			matrix.MakeDenseMatrix(flat, n, 3))
		if err != nil {
			t.Fatal(err)
		}
		mean := sums.Array()

		got := []float64{box.Center.X, box.Center.Y, box.Center.Z}
		for axis := 0; axis < 3; axis++ {
			want := mean[axis] / float64(n)
			if math.Abs(got[axis]-want) > 1e-9 {
				t.Fatalf("Center axis %d is %f but go.matrix says %f.",
					axis, got[axis], want)
			}
		}
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ligand_ref.pdb")
	content := "" +
		atomRecord(0, 0, 0) + "\n" +
		atomRecord(10, 0, 0) + "\n" +
		"END\n"
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}

	box, n, err := FromFile(path, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Read %d coordinates but expected 2.", n)
	}
	want := Box{
		Center: pdb.Coords{X: 5, Y: 0, Z: 0},
		Size:   pdb.Coords{X: 30, Y: 20, Z: 20},
	}
	if box != want {
		t.Fatalf("Box is %v but expected %v.", box, want)
	}
}

func TestFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ligand_ref.pdb")
	if err := os.WriteFile(path, []byte("HEADER\nEND\n"), 0666); err != nil {
		t.Fatal(err)
	}

	if _, _, err := FromFile(path, 10.0); err == nil {
		t.Fatal("A file with no atom records must be an error.")
	}
}

func atomRecord(x, y, z float64) string {
	return fmt.Sprintf("%-6s%5d %-4s %-3s %c%4d    %8.3f%8.3f%8.3f",
		"HETATM", 1, "C1", "BTN", 'A', 1, x, y, z)
}

func randomCoords(cnt int) []pdb.Coords {
	coords := make([]pdb.Coords, cnt)
	for i := range coords {
		coords[i] = pdb.Coords{
			X: (rand.Float64() - 0.5) * 100,
			Y: (rand.Float64() - 0.5) * 100,
			Z: (rand.Float64() - 0.5) * 100,
		}
	}
	return coords
}
