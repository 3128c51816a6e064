// Package notelog maintains the per-folder audit note files.
//
// Every successful copy appends one line to organization_note.txt in its
// destination folder; the file is opened, appended, and closed per call, so
// no handle outlives a single copy. Search walks the output root read-only
// and matches lines by substring, which mirrors the historical behavior:
// a name that is a substring of another recorded name will match too.
package notelog
