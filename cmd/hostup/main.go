// Package main is the entry point for the hostup CLI.
//
// hostup is a command-line tool for provisioning a single Linux host
// into a known-good serving state: web stack, TLS certificates, VPN,
// firewall and intrusion prevention, driven by a small declarative
// descriptor and safe to re-run at any time.
//
// Commands: init, plan, apply, doctor.
//
// For detailed usage information, run:
//
//	hostup --help
package main

import (
	"fmt"
	"os"

	"github.com/hostup/hostup/cmd/hostup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
