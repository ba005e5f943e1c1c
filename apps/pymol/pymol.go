// Package pymol wraps the PyMOL executable for batch structure preparation:
// fetching an entry by PDB identifier, stripping solvent, adding hydrogens
// and writing the receptor and reference-ligand structure files that the
// rest of the docking pipeline consumes.
package pymol

import (
	"fmt"
	"os"

	"github.com/BurntSushi/cmd"
	"github.com/pkg/errors"
)

// Default provides some sane defaults to run PyMOL with. If 'pymol' is in
// your PATH, it can be used as is.
var Default = Config{
	Exec:    "pymol",
	Verbose: true,
}

// Config is used to specify the location of the PyMOL binary and the level
// of output echoed while running it.
type Config struct {
	// Exec points to the 'pymol' executable.
	Exec string

	// Verbose controls whether the command executed is printed to stderr
	// and whether PyMOL's own output streams through.
	Verbose bool
}

// Prep describes one structure-preparation request.
type Prep struct {
	// IdCode is the 4-character PDB identifier to fetch.
	IdCode string

	// Chain selects which chain's polymer atoms become the receptor.
	Chain byte

	// LigandResn is the 3-letter residue name of the reference ligand.
	LigandResn string
}

// Script returns the PyMOL batch script for this request. The solvent is
// removed before hydrogens are added; reversing that order would protonate
// the waters about to be thrown away.
func (p Prep) Script(receptor, ligand string) string {
	return fmt.Sprintf(`# Download the structure
fetch %s, async=0

# Remove water first, then add hydrogens
remove resn HOH

h_add

# Receptor: the selected chain's polymer atoms
save %s, chain %c and polymer

# Reference ligand, kept separate for the grid calculation
save %s, resn %s

quit
`, p.IdCode, receptor, p.Chain, ligand, p.LigandResn)
}

// Run materializes the preparation script to the given path and executes
// PyMOL on it in batch mode. Both output files must exist and be non-empty
// afterwards; PyMOL exits zero even when a fetch or selection silently
// produces nothing, so the file check is the only reliable failure signal.
func (conf Config) Run(p Prep, script, receptor, ligand string) error {
	if err := os.WriteFile(script, []byte(p.Script(receptor, ligand)), 0666); err != nil {
		return errors.Wrap(err, "writing PyMOL script")
	}

	c := cmd.New(conf.Exec, "-c", script)
	if conf.Verbose {
		fmt.Println("  >> Preparing protein with PyMOL")
		fmt.Fprintf(os.Stderr, "%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return errors.Wrap(err, "pymol")
	}
	if conf.Verbose {
		fmt.Println("     OK")
	}

	for _, f := range []string{receptor, ligand} {
		if !nonEmpty(f) {
			return errors.Errorf("'%s' was not created or is empty; is the "+
				"PDB id (%s) correct? Is the ligand residue name (%s) "+
				"correct?", f, p.IdCode, p.LigandResn)
		}
	}
	return nil
}

func nonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}
