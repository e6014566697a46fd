package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/hostup/hostup/internal/provision"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCalculateProgress_Done(t *testing.T) {
	m := Model{Done: true}
	if p := calculateProgress(m); p != 1.0 {
		t.Errorf("expected 1.0, got %v", p)
	}
}

func TestCalculateProgress_PartialPlan(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall", "vpn", "ssh-banner"})
	m.Steps[0].Done = true
	m.Steps[1].Done = true

	p := calculateProgress(m)
	if p < 0.49 || p > 0.51 {
		t.Errorf("expected ~0.5, got %v", p)
	}
}

func TestModelUpdate_StepStartedSettlesEarlierSteps(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall", "vpn"})

	updated, _ := m.Update(StepStartedMsg{Step: "firewall"})
	m = updated.(Model)

	if !m.Steps[0].Done {
		t.Error("expected packages to be settled")
	}
	if !m.Steps[1].Active {
		t.Error("expected firewall to be active")
	}
	if m.Steps[2].Done || m.Steps[2].Active {
		t.Error("expected vpn to still be pending")
	}
}

func TestModelUpdate_ResultAttachesToItsStep(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall"})

	updated, _ := m.Update(ResultMsg{Result: provision.Result{
		Step: "firewall", Action: "allow service ssh", Status: provision.StatusSucceeded,
	}})
	m = updated.(Model)

	if len(m.Steps[1].Results) != 1 {
		t.Fatalf("expected 1 result on firewall, got %d", len(m.Steps[1].Results))
	}
	if len(m.Steps[0].Results) != 0 {
		t.Error("expected packages to have no results")
	}
}

func TestModelUpdate_DoneQuitsAndSettlesEverything(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall"})

	report := &provision.Report{}
	updated, cmd := m.Update(DoneMsg{Report: report})
	m = updated.(Model)

	if !m.Done {
		t.Error("expected Done")
	}
	if m.Report != report {
		t.Error("expected the report to be retained")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	for _, s := range m.Steps {
		if !s.Done {
			t.Errorf("expected step %s to be settled", s.Name)
		}
	}
}

func TestView_ShowsStepsAndSummary(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall"})
	m.Steps[0].Done = true
	m.Steps[0].Results = []provision.Result{
		{Step: "packages", Action: "nginx", Status: provision.StatusSkipped},
		{Step: "packages", Action: "openvpn", Status: provision.StatusSucceeded},
	}

	view := m.View()

	if !strings.Contains(view, "hostup: example.org") {
		t.Error("expected the header to name the domain")
	}
	if !strings.Contains(view, "packages") || !strings.Contains(view, "firewall") {
		t.Error("expected every step to be listed")
	}
	if !strings.Contains(view, "1 ok, 1 skipped") {
		t.Errorf("expected a result summary, got:\n%s", view)
	}
}

func TestFinish_QuitBeforeDoneReturnsPartialReport(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages", "firewall"})
	m.Steps[0].Results = []provision.Result{
		{Step: "packages", Action: "nginx", Status: provision.StatusSucceeded},
	}

	report, err := finish(m)

	if err != ErrInterrupted {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if report == nil {
		t.Fatal("an interrupted run must still yield a report")
	}
	if len(report.Results) != 1 || report.Results[0].Action != "nginx" {
		t.Errorf("expected the received results to survive, got %+v", report.Results)
	}
	if report.Finished.Before(report.Started) {
		t.Error("expected a coherent time window")
	}
}

func TestFinish_CompletedRunReturnsReport(t *testing.T) {
	m := NewApplyModel("example.org", []string{"packages"})
	m.Done = true
	m.Report = &provision.Report{}

	report, err := finish(m)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != m.Report {
		t.Error("expected the final report to be returned as-is")
	}
}

func TestForwarder_OnlyForwardsStepStarts(t *testing.T) {
	// A nil program would panic on Send; the filter must drop
	// non-start events before reaching it.
	f := forwarder{}
	f.Event(provision.Event{Type: provision.EventActionSucceeded, Step: "firewall"})
}
