// Package prerequisites provides utilities for checking the host tools
// the provisioning plan drives.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a host tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory before a run.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// Package is the rpm that provides the tool.
	Package string
}

// DefaultTools returns the tools that must exist before any step runs.
// Everything else is installed by the plan itself.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "rpm",
			Required:    true,
			Description: "Required for querying installed packages",
			Package:     "rpm",
		},
		{
			Name:        "dnf",
			Required:    true,
			Description: "Required for installing missing packages",
			Package:     "dnf",
		},
		{
			Name:        "systemctl",
			Required:    true,
			Description: "Required for enabling and restarting services",
			Package:     "systemd",
		},
	}
}

// ManagedTools returns the tools the package step installs. Missing ones
// are expected on a fresh host and resolve after the first run.
func ManagedTools() []Tool {
	return []Tool{
		{
			Name:        "firewall-cmd",
			Description: "Applies the firewall allow-list",
			Package:     "firewalld",
		},
		{
			Name:        "certbot",
			Description: "Requests and renews TLS certificates",
			Package:     "certbot",
		},
		{
			Name:        "crontab",
			Description: "Registers the daily renewal job",
			Package:     "cronie",
		},
		{
			Name:        "geoipupdate",
			Description: "Refreshes the GeoIP databases",
			Package:     "geoipupdate",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (package %s)", tool.Name, tool.Package))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Try to get version (best effort)
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the tools required before a run.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// CheckAll checks required and managed tools together.
func CheckAll() *CheckResults {
	defaults := DefaultTools()
	managed := ManagedTools()
	all := make([]Tool, 0, len(defaults)+len(managed))
	all = append(all, defaults...)
	all = append(all, managed...)
	return Check(all)
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
