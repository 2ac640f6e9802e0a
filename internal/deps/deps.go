// Package deps discovers the external binaries prevgen relies on and
// probes the active FFmpeg for its encoder capabilities.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency prevgen relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch {
		case command == "":
			status.Detail = "command not configured"
		case !binaryUsable(command):
			status.Detail = fmt.Sprintf("binary %q not found", command)
		default:
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

func binaryUsable(command string) bool {
	if strings.ContainsAny(command, `/\`) {
		return fileExists(command)
	}
	_, err := exec.LookPath(command)
	return err == nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
