package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_HasAllSubcommands(t *testing.T) {
	root := Root()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"init", "plan", "apply", "doctor", "version", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestApply_Flags(t *testing.T) {
	cmd := Apply()

	config := cmd.Flags().Lookup("config")
	require.NotNil(t, config)
	assert.Equal(t, "c", config.Shorthand)

	plain := cmd.Flags().Lookup("plain")
	require.NotNil(t, plain)
	assert.Equal(t, "false", plain.DefValue)
}

func TestInit_DefaultOutputPath(t *testing.T) {
	cmd := Init()

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "hostup.yaml", output.DefValue)
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	cmd := Completion()
	cmd.SetArgs([]string{"tcsh"})

	assert.Error(t, cmd.Execute())
}
