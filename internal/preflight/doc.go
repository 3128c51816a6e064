// Package preflight verifies the output root is usable before a run starts.
package preflight
