// Package scan expands input paths into the flat file list the organizer
// processes, and detects files that already carry the marker token from a
// previous run.
//
// Enumeration excludes anything under the output root so the engine never
// re-ingests its own output. Unreadable subtrees are skipped, not fatal.
// The marker scan inspects the input side only and applies no exclusions.
package scan
