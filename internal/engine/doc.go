// Package engine searches replacement tire sizes that keep the total rolling
// diameter of an original size within MaxDeltaPercent while staying inside
// the per-rim limits table.
//
// Every function is pure: no I/O, no shared state, identical inputs give
// identical outputs. "No candidate" is reported through a comma-ok result.
package engine
