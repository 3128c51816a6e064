// Package organizer drives the classification-and-reorganization run.
//
// A single worker processes the enumerated file list strictly sequentially:
// classify, resolve a collision-free destination, copy with metadata, append
// the audit note, then move on. Sequential processing keeps note-file append
// order identical to processing order and removes any need for locking
// around destination disambiguation.
//
// The worker reports through an ordered event channel: one Progress and one
// Log event per file, then a single Done event carrying the touched folder
// set. Per-file failures become Log events; they never abort the run.
package organizer
