// Package preflight verifies the environment before a run: external tool
// availability, directory access, and destination free space.
package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"picsync/internal/config"
)

// Result reports the outcome of one check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckBinary verifies that the named command resolves through PATH.
func CheckBinary(name, command string) Result {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return Result{Name: name, Detail: "command not configured"}
	}
	resolved, err := exec.LookPath(cmd)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", cmd)}
	}
	return Result{Name: name, Passed: true, Detail: resolved}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeSpace reports the free space on the filesystem holding path.
func CheckFreeSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	freeBytes := stat.Bavail * uint64(stat.Bsize)
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%.1f GiB free)", path, float64(freeBytes)/(1<<30)),
	}
}

// Run evaluates every check relevant to the given configuration and input
// directories.
func Run(cfg *config.Config, inputDirs []string) []Result {
	results := []Result{
		CheckBinary("exiftool", cfg.Exiftool.Binary),
	}
	for _, dir := range inputDirs {
		results = append(results, CheckDirectoryAccess("input", dir))
	}
	if cfg.Paths.OutputDir != "" {
		results = append(results, CheckDirectoryAccess("output", cfg.Paths.OutputDir))
		results = append(results, CheckFreeSpace("output space", cfg.Paths.OutputDir))
	}
	return results
}
