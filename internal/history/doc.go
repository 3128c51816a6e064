// Package history persists a structured record of organization runs in
// SQLite.
//
// The per-folder note files remain the canonical free-text audit trail; the
// history database is the exact-match counterpart, recording one row per run
// and one per successful copy so the CLI can answer "where did this file go"
// without substring ambiguity.
package history
