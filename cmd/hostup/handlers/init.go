package handlers

import (
	"context"
	"fmt"

	"github.com/hostup/hostup/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRun              = wizard.Run
	wizardBuildConfig      = wizard.BuildConfig
	wizardWriteConfig      = wizard.WriteConfig
)

// Init runs the descriptor wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if wizardFileExists(outputPath) {
		overwrite, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
		if !overwrite {
			fmt.Println("Keeping the existing file.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRun(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg, err := wizardBuildConfig(result)
	if err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	if err := wizardWriteConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg.Host.Domain)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("hostup - host provisioning")
	fmt.Println("==========================")
	fmt.Println()
	fmt.Println("This wizard creates a host descriptor with sensible defaults.")
	fmt.Println("Everything it asks can also be written to hostup.yaml by hand.")
	fmt.Println()
}

// printInitSuccess prints the success message with next steps.
func printInitSuccess(outputPath, domain string) {
	fmt.Println()
	fmt.Println("Descriptor saved!")
	fmt.Println()
	fmt.Printf("  File:   %s\n", outputPath)
	fmt.Printf("  Domain: %s\n", domain)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Review the generated file and adjust defaults if needed")
	fmt.Println("  2. Preview the plan:")
	fmt.Println("       hostup plan")
	fmt.Println("  3. Provision the host:")
	fmt.Println("       sudo hostup apply")
	fmt.Println()
}
