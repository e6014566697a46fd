package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/config/wizard"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	origFileExists := wizardFileExists
	origConfirmOverwrite := wizardConfirmOverwrite
	origRun := wizardRun
	origBuildConfig := wizardBuildConfig
	origWriteConfig := wizardWriteConfig

	t.Cleanup(func() {
		wizardFileExists = origFileExists
		wizardConfirmOverwrite = origConfirmOverwrite
		wizardRun = origRun
		wizardBuildConfig = origBuildConfig
		wizardWriteConfig = origWriteConfig
	})
}

func TestInit_WritesDescriptorFromWizardAnswers(t *testing.T) {
	saveAndRestoreInitFactories(t)

	wizardFileExists = func(string) bool { return false }
	wizardRun = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			PublicIP: "203.0.113.5",
			Domain:   "example.org",
			Policy:   config.PolicyAuto,
		}, nil
	}

	var written *config.Config
	var writtenPath string
	wizardWriteConfig = func(cfg *config.Config, path string) error {
		written = cfg
		writtenPath = path
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "hostup.yaml")
	})

	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, "hostup.yaml", writtenPath)
	assert.Equal(t, "example.org", written.Host.Domain)
	assert.Contains(t, output, "Descriptor saved!")
	assert.Contains(t, output, "sudo hostup apply")
}

func TestInit_KeepsExistingFileWhenDeclined(t *testing.T) {
	saveAndRestoreInitFactories(t)

	wizardFileExists = func(string) bool { return true }
	wizardConfirmOverwrite = func(string) (bool, error) { return false, nil }
	wizardRun = func(context.Context) (*wizard.Result, error) {
		t.Fatal("wizard must not run when overwrite is declined")
		return nil, nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "hostup.yaml")
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Keeping the existing file")
}

func TestInit_PropagatesWizardCancellation(t *testing.T) {
	saveAndRestoreInitFactories(t)

	wizardFileExists = func(string) bool { return false }
	wizardRun = func(context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "hostup.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}
