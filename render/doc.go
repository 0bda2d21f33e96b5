// Package render writes packing results for people and other tools.
//
// WriteSVG draws every candidate disk, unselected disks in black and
// selected disks in blue, with conflicting disks optionally highlighted in
// red. WriteIndices and ReadIndices handle the ".ind" solution format: one
// candidate index per line. Document is the JSON form of a solution.
package render
