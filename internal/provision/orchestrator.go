package provision

import "time"

// Report aggregates every action result of a run in execution order.
type Report struct {
	Results  []Result
	Started  time.Time
	Finished time.Time
}

// Count returns how many results carry the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Elapsed is the wall-clock duration of the run.
func (r *Report) Elapsed() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Run executes the plan strictly sequentially with a fail-open policy:
// a Failed result never prevents later steps from being attempted. Every
// result is aggregated into the returned report; notify, when non-nil,
// receives each result as it is produced (used by the live progress
// view).
func Run(ctx *Context, plan []Step, notify func(Result)) *Report {
	report := &Report{Started: time.Now()}

	for i, step := range plan {
		logStepStart(ctx.Observer, step.Name(), i+1, len(plan))
		stepStart := time.Now()

		results := step.Run(ctx)
		elapsed := time.Since(stepStart)

		// Steps do not time their own actions; the step's elapsed time
		// lands on its final result unless the step stamped one itself.
		if n := len(results); n > 0 && results[n-1].Duration == 0 {
			results[n-1].Duration = elapsed
		}

		for _, res := range results {
			logResult(ctx.Observer, res)
			if notify != nil {
				notify(res)
			}
		}
		report.Results = append(report.Results, results...)

		logStepDone(ctx.Observer, step.Name(), elapsed)
	}

	report.Finished = time.Now()
	return report
}
