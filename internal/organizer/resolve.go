package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"filehive/internal/classify"
)

// monthLayout names destination folders by the source's last-modified month.
const monthLayout = "2006-01"

// maxProbeAttempts bounds the collision probe so a pathological folder
// cannot spin forever.
const maxProbeAttempts = 10000

// DestinationFolder computes the target folder for a file: the uppercased
// extension token (or NOEXT) under the output root, then the year-month of
// the source's modification time.
func DestinationFolder(outputRoot, extToken string, mtime time.Time) string {
	return filepath.Join(outputRoot, strings.ToUpper(extToken), mtime.Format(monthLayout))
}

// MarkedName inserts the marker token immediately before the extension of a
// base name. The result is NFC-normalized so destination names are stable
// across filesystems that decompose Unicode.
func MarkedName(base, marker string) string {
	stem, ext := classify.SplitExt(base)
	return norm.NFC.String(stem + marker + ext)
}

// ResolveDestination ensures the folder exists and returns a destination
// path inside it that does not exist at the moment of resolution. Name
// collisions are resolved by appending _1, _2, ... before the extension;
// every probe is a fresh existence test, so counters never carry across
// runs.
func ResolveDestination(folder, base, marker string) (string, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create destination folder: %w", err)
	}

	candidate := filepath.Join(folder, MarkedName(base, marker))
	free, err := pathFree(candidate)
	if err != nil {
		return "", err
	}
	if free {
		return candidate, nil
	}

	stem, ext := classify.SplitExt(filepath.Base(candidate))
	for counter := 1; counter <= maxProbeAttempts; counter++ {
		probe := filepath.Join(folder, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		free, err := pathFree(probe)
		if err != nil {
			return "", err
		}
		if free {
			return probe, nil
		}
	}
	return "", fmt.Errorf("exhausted destination name slots in %s", folder)
}

func pathFree(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("probe destination %s: %w", path, err)
}
