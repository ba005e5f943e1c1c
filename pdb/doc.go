/*
Package pdb provides minimal support for extracting atomic coordinates from
structure files in the PDB fixed-width record format. Only the 3 dimensional
coordinates of ATOM and HETATM records are read; everything else in a file is
ignored.

The parser is deliberately permissive: a record line that is too short, or
whose coordinate fields are not valid decimal numbers, is skipped rather than
treated as an error. Real-world files produced by preparation tools are full
of such lines, and the callers of this package only ever need the coordinates
that could be read.
*/
package pdb
