package classify

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// NoExtensionToken is the extension token assigned to files without an
// extension. It doubles as the destination folder name for such files.
const NoExtensionToken = "NOEXT"

// sniffLen covers the longest magic signature the matcher inspects.
const sniffLen = 262

// Kind is the semantic content type of a file. The zero value is the
// explicit Unknown variant, so a failed sniff is distinguishable from any
// matched type without comparing label strings.
type Kind struct {
	mime string
}

// Unknown is the kind assigned when no signature matches or the file cannot
// be inspected.
var Unknown = Kind{}

// KnownKind builds a Kind from a MIME string. Empty input yields Unknown.
func KnownKind(mime string) Kind {
	return Kind{mime: strings.TrimSpace(mime)}
}

// IsUnknown reports whether the kind is the Unknown variant.
func (k Kind) IsUnknown() bool { return k.mime == "" }

// Label returns the MIME-like label recorded in audit notes.
func (k Kind) Label() string {
	if k.IsUnknown() {
		return "unknown/unknown"
	}
	return k.mime
}

// Result pairs the detected kind with the normalized extension token.
type Result struct {
	Kind      Kind
	Extension string
}

// Label is a convenience passthrough to the kind's label.
func (r Result) Label() string { return r.Kind.Label() }

// Classify inspects a file and derives its kind and extension token. It
// never returns an error: sniff failures of any cause degrade to Unknown.
func Classify(path string) Result {
	return Result{
		Kind:      Sniff(path),
		Extension: ExtensionToken(path),
	}
}

// Sniff determines the content kind from the file's leading bytes.
func Sniff(path string) Kind {
	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Unknown
	}
	if n == 0 {
		// Zero-length files carry no signature.
		return Unknown
	}

	match, err := filetype.Match(buf[:n])
	if err != nil || match == filetype.Unknown {
		return Unknown
	}
	return Kind{mime: match.MIME.Value}
}

// ExtensionToken returns the lower-cased extension without its dot, or
// NoExtensionToken when the base name has none. A leading dot alone does not
// count as an extension, so dotfiles like ".bashrc" classify as NOEXT.
func ExtensionToken(path string) string {
	_, ext := SplitExt(filepath.Base(path))
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return NoExtensionToken
	}
	return strings.ToLower(ext)
}

// SplitExt splits a base name into stem and dotted extension. Unlike
// filepath.Ext, a dot that starts the name does not begin an extension.
func SplitExt(base string) (stem, ext string) {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base, ""
	}
	return base[:idx], base[idx:]
}
