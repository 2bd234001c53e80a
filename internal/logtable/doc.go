// Package logtable loads simulator output logs into immutable numeric tables.
//
// A log is a plain-text file with one header line of column names followed
// by one row per time step or sample:
//
//	t, V_t, SOC
//	0 , 3.7, 1
//	1 , 3.65, 0.95
//
// Load returns a *MissingFileError when the path does not exist and a
// *MalformedRowError when a row has the wrong number of fields or a field is
// not numeric. Header-less matrices (rotation and angular-velocity logs) are
// read with LoadMatrix; spreadsheet exports with LoadXLSX.
package logtable
