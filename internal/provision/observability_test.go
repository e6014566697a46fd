package provision

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureObserver records every log line the observer emits.
func captureObserver(lines *[]string) Observer {
	return NewObserver(funcr.New(func(_, args string) {
		*lines = append(*lines, args)
	}, funcr.Options{}))
}

func TestObserver_EmitsStructuredEvents(t *testing.T) {
	var lines []string
	obs := captureObserver(&lines)

	obs.Event(Event{
		Type:    EventActionFailed,
		Step:    "firewall",
		Action:  "reload",
		Message: "exit status 252",
	})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"type"="action.failed"`)
	assert.Contains(t, lines[0], `"step"="firewall"`)
	assert.Contains(t, lines[0], `"action"="reload"`)
	assert.Contains(t, lines[0], "exit status 252")
}

func TestRun_LogsStepLifecycleThroughObserver(t *testing.T) {
	var lines []string
	var ran []string
	ctx := testContext(t)
	ctx.Observer = captureObserver(&lines)

	plan := []Step{
		&stubStep{name: "geoip", ran: &ran, results: []Result{Failed("geoip", "geoipupdate", "unreachable")}},
	}
	Run(ctx, plan, nil)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "step.started")
	assert.Contains(t, joined, "step.completed")
	assert.Contains(t, joined, "action.failed")
}
