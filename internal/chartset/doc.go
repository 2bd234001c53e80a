// Package chartset describes batches of charts as YAML files and runs them.
//
// A chart set holds jobs; each job loads one log (or, for a vectors job, a
// rotation-matrix log and an angular-velocity log) and renders one or more
// charts from it. Files are decoded strictly and validated against an
// embedded CUE schema before anything is read or written.
//
// The built-in presets reproduce the simulator's plotting scripts, output
// file names included.
package chartset
