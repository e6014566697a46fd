package execute

import (
	"context"
	"time"

	"github.com/hostup/hostup/internal/util/retry"
)

// RunRetry runs the command up to attempts times with backoff, returning
// the last Result. Used for commands that touch the network (package
// installs, GeoIP downloads) and fail transiently.
func RunRetry(ctx context.Context, r Runner, attempts int, name string, args ...string) Result {
	var last Result
	_ = retry.Do(ctx, func() error {
		last = r.Run(ctx, name, args...)
		return last.Err
	}, retry.WithAttempts(attempts), retry.WithInitialDelay(2*time.Second))
	return last
}
