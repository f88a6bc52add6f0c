// Package deps reports availability of the external binaries shrinktunes
// shells out to, and supplies per-platform install remediation text.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency shrinktunes relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// FFmpegRequirement describes the transcoder dependency. An empty binary
// means "ffmpeg" resolved via PATH.
func FFmpegRequirement(binary string) Requirement {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return Requirement{
		Name:        "FFmpeg",
		Command:     binary,
		Description: "Required for audio conversion",
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Check evaluates a single requirement.
func Check(req Requirement) Status {
	return CheckBinaries([]Requirement{req})[0]
}
