// Package obabel wraps the Open Babel executable for converting prepared
// structure files into the docking format consumed by the search engine.
package obabel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/cmd"
	"github.com/pkg/errors"
)

// Default provides some sane defaults to run Open Babel with.
var Default = Config{
	Exec:    "obabel",
	PH:      7.4,
	Verbose: true,
}

// Config is used to specify the location of the Open Babel binary along
// with the protonation pH applied to ligands.
type Config struct {
	// Exec points to the 'obabel' executable.
	Exec string

	// PH is the pH at which implicit hydrogens are added to ligands.
	PH float64

	// Verbose controls whether commands executed are printed to stderr and
	// whether Open Babel's own output streams through.
	Verbose bool
}

// Receptor converts a receptor structure file to the docking format with all
// rotatable bonds locked (the receptor is treated as rigid). Open Babel
// assigns the partial charges itself.
func (conf Config) Receptor(in, out string) error {
	return conf.convert("Receptor PDB -> PDBQT", out, receptorArgs(in, out))
}

// Ligand converts a ligand structure file to the docking format, adding
// implicit hydrogens at the configured pH.
func (conf Config) Ligand(in, out string) error {
	desc := fmt.Sprintf("Ligand PDB -> PDBQT (pH %g)", conf.PH)
	return conf.convert(desc, out, conf.ligandArgs(in, out))
}

// receptorArgs builds the receptor conversion argv. -xr locks all rotatable
// bonds.
func receptorArgs(in, out string) []string {
	return []string{in, "-O", out, "-xr"}
}

// ligandArgs builds the ligand conversion argv. -h adds implicit hydrogens
// (harmless if the preparation step already added them) and -p sets the
// protonation pH.
func (conf Config) ligandArgs(in, out string) []string {
	return []string{in, "-O", out, "-h", "-p", fmt.Sprintf("%g", conf.PH)}
}

func (conf Config) convert(desc, out string, args []string) error {
	c := cmd.New(conf.Exec, args...)
	if conf.Verbose {
		fmt.Printf("  >> %s\n", desc)
		fmt.Fprintf(os.Stderr, "%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return errors.Wrap(err, "obabel")
	}
	if conf.Verbose {
		fmt.Println("     OK")
	}

	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		return errors.Errorf("'%s' was not created or is empty; is Open "+
			"Babel installed?", out)
	}
	return nil
}
