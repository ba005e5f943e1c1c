package pipeline

import (
	"fmt"
	"os"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/apps/vina"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pdb"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/rmsd"
)

// Report prints the captured docking log, a per-pose summary and the list of
// created artifact files. It is the terminal step and never fails: a missing
// log gets a fallback message, missing artifacts are omitted, and a result
// file that cannot be compared to the reference is silently skipped.
func (c Config) Report(results vina.Results) {
	content, err := os.ReadFile(LogFile)
	if err != nil {
		fmt.Printf("  Log file not found, check %s file.\n", ResultPDBQT)
	} else {
		fmt.Print(string(content))
	}

	for _, line := range poseLines(results) {
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Created files:")
	for _, line := range artifactLines() {
		fmt.Println(line)
	}
}

// poseLines summarizes the parsed affinity table, annotated with each pose's
// deviation from the crystallographic reference ligand when the atom counts
// line up (a redocking sanity check). The conversion step may have changed
// the ligand's atom count, in which case the deviation is left out.
func poseLines(results vina.Results) []string {
	if len(results.Poses) == 0 {
		return nil
	}

	deviations := referenceDeviations(len(results.Poses))

	lines := make([]string, 0, len(results.Poses)+1)
	lines = append(lines, "Poses:")
	for i, pose := range results.Poses {
		line := fmt.Sprintf("  mode %2d  affinity %7.3f kcal/mol",
			pose.Mode, pose.Affinity)
		if deviations != nil {
			line += fmt.Sprintf("  vs reference %6.2f A", deviations[i])
		}
		lines = append(lines, line)
	}
	return lines
}

// referenceDeviations computes the in-frame RMSD of every docked pose
// against the reference ligand. Returns nil unless the result file holds
// exactly one model per pose and every model matches the reference's atom
// count.
func referenceDeviations(poses int) []float64 {
	ref, err := pdb.ReadCoords(LigandRefPDB)
	if err != nil || len(ref) == 0 {
		return nil
	}
	models, err := pdb.ReadModels(ResultPDBQT)
	if err != nil || len(models) != poses {
		return nil
	}

	deviations := make([]float64, len(models))
	for i, model := range models {
		if len(model) != len(ref) {
			return nil
		}
		deviations[i] = rmsd.RMSD(model, ref)
	}
	return deviations
}

// artifactLines lists the docking artifacts that exist, with their sizes.
func artifactLines() []string {
	var lines []string
	for _, file := range []string{
		ReceptorPDBQT, LigandPDBQT, ResultPDBQT, LogFile,
	} {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-25s  (%d bytes)",
			file, info.Size()))
	}
	return lines
}
