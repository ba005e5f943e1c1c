// Package pipeline orchestrates the automated docking workflow: structure
// preparation, grid calculation, format conversion, the docking search and
// result reporting. The steps run strictly in that order, each consuming file
// artifacts produced by its predecessor; the first failing step aborts the
// run and partial artifacts are left on disk for inspection.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/apps/obabel"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/apps/pymol"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/apps/vina"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/grid"
)

// Artifact file names, relative to the working directory. A file's existence
// is the only state handed between steps, besides the in-memory search
// volume.
const (
	ScriptFile    = "prepare.pml"
	ReceptorPDB   = "receptor.pdb"
	LigandRefPDB  = "ligand_ref.pdb"
	ReceptorPDBQT = "receptor.pdbqt"
	LigandPDBQT   = "ligand.pdbqt"
	ResultPDBQT   = "result.pdbqt"
	LogFile       = "result_log.txt"
)

// Default mirrors the settings of the classic streptavidin/biotin redocking
// run, a standard smoke test for a docking setup.
var Default = Config{
	IdCode:     "1stp",
	Chain:      'A',
	LigandResn: "BTN",
	Padding:    10.0,
	PyMOL:      pymol.Default,
	OBabel:     obabel.Default,
	Vina:       vina.Default,
}

// Config holds every setting of a run. It is immutable once the pipeline
// starts: each step receives the value, never a pointer.
type Config struct {
	// IdCode is the PDB identifier of the target structure.
	IdCode string

	// Chain selects the receptor chain.
	Chain byte

	// LigandResn is the 3-letter residue name of the reference ligand.
	LigandResn string

	// Padding is the extra search space added on each side of the ligand's
	// bounding box, in Angstroms.
	Padding float64

	PyMOL  pymol.Config
	OBabel obabel.Config
	Vina   vina.Config
}

// Run executes the whole pipeline. The first error aborts the run; the
// caller decides the process exit status.
func (c Config) Run() error {
	banner(1, "Preparing protein and ligand (PyMOL)")
	if err := c.Prepare(); err != nil {
		return err
	}

	banner(2, "Calculating automatic grid (ligand coordinates)")
	box, err := c.Grid()
	if err != nil {
		return err
	}

	banner(3, "Converting formats (Open Babel)")
	if err := c.Convert(); err != nil {
		return err
	}

	banner(4, "Running docking (AutoDock Vina)")
	results, err := c.Dock(box)
	if err != nil {
		return err
	}

	banner(5, "Results")
	c.Report(results)
	return nil
}

// Prepare fetches the structure and writes the receptor and reference-ligand
// files.
func (c Config) Prepare() error {
	prep := pymol.Prep{
		IdCode:     c.IdCode,
		Chain:      c.Chain,
		LigandResn: c.LigandResn,
	}
	if err := c.PyMOL.Run(prep, ScriptFile, ReceptorPDB, LigandRefPDB); err != nil {
		return err
	}
	fmt.Println("  Protein and ligand PDB files are ready.")
	fmt.Println()
	return nil
}

// Grid derives the search volume from the reference ligand's coordinates.
func (c Config) Grid() (grid.Box, error) {
	box, atoms, err := grid.FromFile(LigandRefPDB, c.Padding)
	if err != nil {
		return grid.Box{}, errors.Wrapf(err,
			"no usable coordinates in '%s'; is the ligand residue name "+
				"(%s) correct?", LigandRefPDB, c.LigandResn)
	}

	fmt.Printf("  Atom count     : %d\n", atoms)
	fmt.Printf("  Grid center    : X=%.2f  Y=%.2f  Z=%.2f\n",
		box.Center.X, box.Center.Y, box.Center.Z)
	fmt.Printf("  Grid size      : X=%.2f  Y=%.2f  Z=%.2f\n",
		box.Size.X, box.Size.Y, box.Size.Z)
	fmt.Println()
	return box, nil
}

// Convert produces the docking-format receptor and ligand files.
func (c Config) Convert() error {
	if err := c.OBabel.Receptor(ReceptorPDB, ReceptorPDBQT); err != nil {
		return err
	}
	if err := c.OBabel.Ligand(LigandRefPDB, LigandPDBQT); err != nil {
		return err
	}
	fmt.Println("  PDBQT files are ready.")
	fmt.Println()
	return nil
}

// Dock runs the search engine inside the computed volume.
func (c Config) Dock(box grid.Box) (vina.Results, error) {
	results, err := c.Vina.Run(box,
		ReceptorPDBQT, LigandPDBQT, ResultPDBQT, LogFile)
	if err != nil {
		return vina.Results{}, err
	}
	fmt.Println("  Docking completed!")
	fmt.Println()
	return results, nil
}

func banner(step int, title string) {
	fmt.Println(strings.Repeat("=", 55))
	fmt.Printf("STEP %d: %s\n", step, title)
	fmt.Println(strings.Repeat("=", 55))
}
