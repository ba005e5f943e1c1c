package vina

import (
	"strconv"
	"strings"
)

// ParseResults scans the engine's captured output for the affinity table,
// which looks like:
//
//	mode |   affinity | dist from best mode
//	     | (kcal/mol) | rmsd l.b.| rmsd u.b.
//	-----+------------+----------+----------
//	   1       -7.123          0          0
//	   2       -6.891      1.205      3.411
//
// Rows are read until the first line that does not parse as one. A missing
// or mangled table yields empty Results rather than an error; the table is
// used for reporting only.
func ParseResults(output string) Results {
	var res Results

	inTable := false
	for _, line := range strings.Split(output, "\n") {
		if !inTable {
			if strings.HasPrefix(strings.TrimSpace(line), "-----+") {
				inTable = true
			}
			continue
		}

		pose, ok := parsePose(line)
		if !ok {
			break
		}
		res.Poses = append(res.Poses, pose)
	}
	return res
}

func parsePose(line string) (Pose, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Pose{}, false
	}

	mode, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return Pose{}, false
	}
	affinity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Pose{}, false
	}
	lower, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Pose{}, false
	}
	upper, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Pose{}, false
	}
	return Pose{
		Mode:      int(mode),
		Affinity:  affinity,
		RMSDLower: lower,
		RMSDUpper: upper,
	}, true
}
