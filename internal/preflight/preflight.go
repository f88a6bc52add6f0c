package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"shrinktunes/internal/config"
	"shrinktunes/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config: the ffmpeg
// binary, the lock directory, and the working directory the glob expands
// against.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckBinary(deps.FFmpegRequirement(cfg.FFmpeg.Binary))}
	results = append(results, CheckDirectoryAccess("Lock directory", cfg.Paths.LockDir))
	if wd, err := os.Getwd(); err == nil {
		results = append(results, CheckDirectoryAccess("Working directory", wd))
	} else {
		results = append(results, Result{Name: "Working directory", Detail: fmt.Sprintf("error: %v", err)})
	}
	return results
}

// CheckBinary verifies an external binary requirement.
func CheckBinary(req deps.Requirement) Result {
	status := deps.Check(req)
	if !status.Available {
		return Result{Name: status.Name, Detail: status.Detail}
	}
	return Result{Name: status.Name, Passed: true, Detail: status.Command}
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
