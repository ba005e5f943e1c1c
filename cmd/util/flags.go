package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

var (
	FlagChain          = "A"
	FlagLigand         = "BTN"
	FlagPadding        = 10.0
	FlagExhaustiveness = 8
	FlagNumModes       = 9
	FlagPyMOLExec      = "pymol"
	FlagOBabelExec     = "obabel"
	FlagVinaExec       = "vina"
	FlagQuiet          = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"chain": {
		set: func() {
			flag.StringVar(&FlagChain, "chain", FlagChain,
				"The receptor chain to dock against (a single letter).")
		},
		init: func() {
			if len(FlagChain) != 1 {
				Fatalf("The chain must be a single letter, but got '%s'.",
					FlagChain)
			}
		},
	},
	"ligand": {
		set: func() {
			flag.StringVar(&FlagLigand, "ligand", FlagLigand,
				"The 3-letter residue name of the reference ligand.")
		},
	},
	"padding": {
		set: func() {
			flag.Float64Var(&FlagPadding, "padding", FlagPadding,
				"Extra search space on each side of the ligand's\n"+
					"bounding box, in Angstroms.")
		},
		init: func() {
			if FlagPadding <= 0 {
				Fatalf("The padding must be positive, but got %f.",
					FlagPadding)
			}
		},
	},
	"exhaustiveness": {
		set: func() {
			flag.IntVar(&FlagExhaustiveness, "exhaustiveness",
				FlagExhaustiveness,
				"Docking search thoroughness (higher is better but slower).")
		},
		init: func() {
			if FlagExhaustiveness <= 0 {
				Fatalf("The exhaustiveness must be positive, but got %d.",
					FlagExhaustiveness)
			}
		},
	},
	"num-modes": {
		set: func() {
			flag.IntVar(&FlagNumModes, "num-modes", FlagNumModes,
				"How many poses to calculate.")
		},
		init: func() {
			if FlagNumModes <= 0 {
				Fatalf("The number of modes must be positive, but got %d.",
					FlagNumModes)
			}
		},
	},
	"pymol-exec": {
		set: func() {
			flag.StringVar(&FlagPyMOLExec, "pymol-exec", FlagPyMOLExec,
				"The path to the PyMOL executable.")
		},
	},
	"obabel-exec": {
		set: func() {
			flag.StringVar(&FlagOBabelExec, "obabel-exec", FlagOBabelExec,
				"The path to the Open Babel executable.")
		},
	},
	"vina-exec": {
		set: func() {
			flag.StringVar(&FlagVinaExec, "vina-exec", FlagVinaExec,
				"The path to the AutoDock Vina executable.")
		},
	},
	"quiet": {
		set: func() {
			flag.BoolVar(&FlagQuiet, "quiet", FlagQuiet,
				"When set, commands executed are not echoed and the\n"+
					"external tools' output does not stream through.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
