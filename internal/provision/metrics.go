package provision

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/hostup/hostup/internal/render"
)

// WriteTextfile exports the run outcome in Prometheus text format for a
// node_exporter textfile collector. The file is replaced atomically so
// the collector never scrapes a partial export.
func WriteTextfile(path string, r *Report) error {
	reg := prometheus.NewRegistry()

	stepStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hostup_step_status",
		Help: "Outcome of each provisioning action (1 for the observed status).",
	}, []string{"step", "action", "status"})

	completion := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hostup_run_completion_timestamp_seconds",
		Help: "Unix timestamp of the last completed provisioning run.",
	})

	failed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hostup_run_failed_actions",
		Help: "Number of failed actions in the last run.",
	})

	reg.MustRegister(stepStatus, completion, failed)

	for _, res := range r.Results {
		stepStatus.WithLabelValues(res.Step, res.Action, string(res.Status)).Set(1)
	}
	completion.Set(float64(r.Finished.Unix()))
	failed.Set(float64(r.Count(StatusFailed)))

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}

	return render.WriteAtomic(path, buf.Bytes(), 0o644)
}
