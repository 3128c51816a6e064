// Package services defines the shared error taxonomy for engine components.
//
// Errors are tagged with sentinel markers so callers can classify a per-file
// failure (configuration problem vs transient I/O) without string matching.
package services
