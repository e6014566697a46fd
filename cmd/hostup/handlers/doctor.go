package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hostup/hostup/internal/util/prerequisites"
)

// managedUnits are the services the plan brings up, probed read-only.
var managedUnits = []string{
	"nginx",
	"httpd",
	"openvpn-server@server",
	"firewalld",
	"fail2ban",
	"sshd",
	"crond",
}

// checkAllPrereqs runs the full tool check - replaced in tests.
var checkAllPrereqs = prerequisites.CheckAll

// Doctor probes the host without changing anything: tool availability,
// managed service state and the presence of the generated config files.
func Doctor(ctx context.Context, configPath string) error {
	fmt.Println("Tools")
	fmt.Println("-----")
	results := checkAllPrereqs()
	for _, res := range results.Results {
		if res.Found {
			version := res.Version
			if version != "" {
				version = "  " + version
			}
			fmt.Printf("  [ OK ] %-14s %s%s\n", res.Tool.Name, res.Path, version)
			continue
		}
		note := "missing"
		if !res.Tool.Required {
			note = "missing (installed by apply, package " + res.Tool.Package + ")"
		}
		fmt.Printf("  [MISS] %-14s %s\n", res.Tool.Name, note)
	}

	fmt.Println()
	fmt.Println("Services")
	fmt.Println("--------")
	runner := newRunner(time.Minute)
	for _, unit := range managedUnits {
		state := "inactive"
		if runner.Run(ctx, "systemctl", "is-active", "--quiet", unit).Ok() {
			state = "active"
		}
		fmt.Printf("  %-22s %s\n", unit, state)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Println()
		fmt.Println("No descriptor found, skipping file checks. Run 'hostup init' to create one.")
		if results.HasErrors() {
			return results.Error()
		}
		return nil
	}

	fmt.Println()
	fmt.Println("Files")
	fmt.Println("-----")
	for _, path := range []string{
		cfg.NginxSitePath(),
		cfg.HTTPDVhostPath(),
		cfg.OpenVPNServerPath(),
		cfg.BannerPath(),
		cfg.JailPath(),
	} {
		mark := "[MISS]"
		if _, err := os.Stat(path); err == nil {
			mark = "[ OK ]"
		}
		fmt.Printf("  %s %s\n", mark, path)
	}

	if results.HasErrors() {
		return results.Error()
	}
	return nil
}
