package pdb

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Coords is a triple where the first element is X, the second is Y and the
// third is Z.
type Coords struct {
	X, Y, Z float64
}

// ReadCoords reads every atom coordinate from the ATOM and HETATM records of
// a PDB file. Lines that are too short or whose coordinate fields cannot be
// parsed are skipped. An error is returned only if the file itself cannot be
// read; a file yielding zero coordinates is not an error here, since only the
// caller knows whether that is fatal.
func ReadCoords(fileName string) ([]Coords, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCoords(f)
}

func readCoords(r io.Reader) ([]Coords, error) {
	coords := make([]Coords, 0, 50)

	buf := bufio.NewReaderSize(r, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines longer
		// than 1000 characters, which is the size of our buffer.
		line, _, err := buf.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if c, ok := parseAtom(string(line)); ok {
			coords = append(coords, c)
		}
	}
	return coords, nil
}

// ReadModels reads a multi-model PDB file (MODEL/ENDMDL records, as written
// by docking engines for each output pose) and returns one coordinate set per
// model. A file containing no MODEL records yields a single coordinate set,
// and a final model truncated before its ENDMDL still contributes its atoms.
// Field parsing is as tolerant as in ReadCoords.
func ReadModels(fileName string) ([][]Coords, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	models := make([][]Coords, 0, 10)
	current := make([]Coords, 0, 50)

	buf := bufio.NewReaderSize(f, 1000)
	for {
		line, _, err := buf.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		s := string(line)
		switch {
		case strings.HasPrefix(s, "MODEL"):
			current = make([]Coords, 0, 50)
		case strings.HasPrefix(s, "ENDMDL"):
			if len(current) > 0 {
				models = append(models, current)
			}
			current = nil
		default:
			if c, ok := parseAtom(s); ok {
				current = append(current, c)
			}
		}
	}

	if len(current) > 0 {
		models = append(models, current)
	}
	return models, nil
}

// parseAtom extracts the coordinate triple from an ATOM or HETATM record.
// The X, Y and Z fields are in columns 31-38, 39-46 and 47-54 (1-indexed,
// 8 characters each). The second return value is false whenever the line is
// not an atom record, is shorter than the coordinate fields, or holds fields
// that are not valid decimal numbers.
func parseAtom(line string) (Coords, bool) {
	if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
		return Coords{}, false
	}
	if len(line) < 54 {
		return Coords{}, false
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil {
		return Coords{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	if err != nil {
		return Coords{}, false
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err != nil {
		return Coords{}, false
	}
	return Coords{x, y, z}, true
}
