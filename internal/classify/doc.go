// Package classify determines a semantic content type and extension token
// for files being organized.
//
// Type detection sniffs leading magic bytes; it never fails a file. Anything
// unreadable or unrecognized classifies as the Unknown kind, which renders as
// the "unknown/unknown" label.
package classify
