// dock runs the automated docking pipeline against a single PDB entry:
// structure preparation with PyMOL, automatic grid calculation from the
// reference ligand, format conversion with Open Babel, an AutoDock Vina
// search, and a final report of the produced artifacts.
package main

import (
	"fmt"

	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/cmd/util"
	"github.com/berkemtoprakelmaci/Molecular-Docking-Pipeline/pipeline"
)

func init() {
	util.FlagUse("chain", "ligand", "padding", "exhaustiveness", "num-modes",
		"pymol-exec", "obabel-exec", "vina-exec", "quiet")
	util.FlagParse("pdb-id",
		"Docks the named reference ligand back into the given structure.\n"+
			"e.g., 'dock 1stp' redocks biotin into streptavidin.")
	util.AssertNArg(1)
}

func main() {
	conf := pipeline.Default
	conf.IdCode = util.Arg(0)
	conf.Chain = util.FlagChain[0]
	conf.LigandResn = util.FlagLigand
	conf.Padding = util.FlagPadding

	conf.PyMOL.Exec = util.FlagPyMOLExec
	conf.OBabel.Exec = util.FlagOBabelExec
	conf.Vina.Exec = util.FlagVinaExec
	conf.Vina.Exhaustiveness = util.FlagExhaustiveness
	conf.Vina.NumModes = util.FlagNumModes

	verbose := !util.FlagQuiet
	conf.PyMOL.Verbose = verbose
	conf.OBabel.Verbose = verbose
	conf.Vina.Verbose = verbose

	util.Assert(conf.Run(), "Pipeline stopped")

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Check binding affinity scores in %s\n", pipeline.LogFile)
	fmt.Printf("  2. Open %s in PyMOL to visualize poses\n", pipeline.ResultPDBQT)
	fmt.Printf("  3. Load the best pose together with %s and analyze\n",
		pipeline.ReceptorPDB)
}
