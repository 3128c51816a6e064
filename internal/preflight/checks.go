package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"filehive/internal/config"
)

// Result captures the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Run executes all preflight checks for the configured output root.
func Run(cfg *config.Config) []Result {
	return []Result{
		CheckOutputRoot(cfg.Paths.OutputRoot),
		CheckFreeSpace(cfg.Paths.OutputRoot, cfg.Organizer.FreeSpaceMinMiB),
	}
}

// Failures filters results down to the failed checks.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// CheckOutputRoot ensures the output root exists and is writable and
// traversable.
func CheckOutputRoot(root string) Result {
	const name = "output root"
	if strings.TrimSpace(root) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("cannot create (%v)", err)}
	}
	if err := unix.Access(root, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("not writable (%v)", err)}
	}
	return Result{Name: name, Passed: true, Detail: root}
}

// CheckFreeSpace verifies the filesystem holding the output root has at
// least minMiB mebibytes available. A zero floor disables the check.
func CheckFreeSpace(root string, minMiB int) Result {
	const name = "free space"
	if minMiB <= 0 {
		return Result{Name: name, Passed: true, Detail: "check disabled"}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(root, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs failed (%v)", err)}
	}

	availMiB := stat.Bavail * uint64(stat.Bsize) / (1 << 20)
	if availMiB < uint64(minMiB) {
		return Result{Name: name, Detail: fmt.Sprintf("%d MiB available, %d MiB required", availMiB, minMiB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d MiB available", availMiB)}
}
