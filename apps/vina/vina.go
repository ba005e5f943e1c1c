// Package vina wraps the AutoDock Vina executable. It builds the engine's
// command line from a computed search volume, captures the engine's combined
// output into a log file, and parses the affinity table out of that output.
package vina

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/cmd"
	"github.com/pkg/errors"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/grid"
)

// Default provides some sane defaults to run Vina with.
var Default = Config{
	Exec:           "vina",
	Exhaustiveness: 8,
	NumModes:       9,
	Verbose:        true,
}

// Config is used to specify the location of the Vina binary in addition to
// the search parameters passed to it.
type Config struct {
	// Exec points to the 'vina' executable.
	Exec string

	// Exhaustiveness controls search thoroughness versus runtime.
	Exhaustiveness int

	// NumModes is how many poses the engine is asked to produce.
	NumModes int

	// Verbose controls whether the command executed is printed to stderr.
	Verbose bool
}

// Pose is one row of the engine's affinity table.
type Pose struct {
	Mode      int
	Affinity  float64 // kcal/mol
	RMSDLower float64
	RMSDUpper float64
}

// Results holds what could be recovered from the engine's output. An empty
// Poses slice means the table could not be found, never that docking failed;
// failures surface as errors from Run.
type Results struct {
	Poses []Pose
}

// args builds the engine argv. Center and size are emitted at 3-decimal
// precision.
func (conf Config) args(box grid.Box, receptor, ligand, out string) []string {
	return []string{
		"--receptor", receptor,
		"--ligand", ligand,
		"--center_x", fmt.Sprintf("%.3f", box.Center.X),
		"--center_y", fmt.Sprintf("%.3f", box.Center.Y),
		"--center_z", fmt.Sprintf("%.3f", box.Center.Z),
		"--size_x", fmt.Sprintf("%.3f", box.Size.X),
		"--size_y", fmt.Sprintf("%.3f", box.Size.Y),
		"--size_z", fmt.Sprintf("%.3f", box.Size.Z),
		"--exhaustiveness", fmt.Sprintf("%d", conf.Exhaustiveness),
		"--num_modes", fmt.Sprintf("%d", conf.NumModes),
		"--out", out,
	}
}

// Run executes the docking search. The engine's stdout and stderr are
// captured together, echoed, and written verbatim to logFile BEFORE the exit
// status is checked: Vina 1.2.7 dropped its --log flag, and the log must
// survive a failed run for postmortem inspection.
func (conf Config) Run(box grid.Box, receptor, ligand, out, logFile string) (Results, error) {
	c := cmd.New(conf.Exec, conf.args(box, receptor, ligand, out)...)
	if conf.Verbose {
		fmt.Println("  >> Starting Vina docking")
		fmt.Fprintf(os.Stderr, "%s\n", c)
	}

	var buf bytes.Buffer
	c.Cmd.Stdout = &buf
	c.Cmd.Stderr = &buf
	runErr := c.Run()

	output := buf.String()
	fmt.Print(output)
	logErr := os.WriteFile(logFile, []byte(output), 0666)

	if runErr != nil {
		return Results{}, errors.Wrap(runErr, "vina")
	}
	if logErr != nil {
		return Results{}, errors.Wrapf(logErr, "writing '%s'", logFile)
	}
	if conf.Verbose {
		fmt.Println("     OK")
	}
	return ParseResults(output), nil
}
