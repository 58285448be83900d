package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps in-process counters for the HTTP surface and the
// scoring sweeps. Snapshot is served on /metricsz.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	sweepsTotal     uint64
	sweepFailures   uint64
	lastSweepUnix   int64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordSweep(failed bool, at time.Time) {
	atomic.AddUint64(&c.sweepsTotal, 1)
	if failed {
		atomic.AddUint64(&c.sweepFailures, 1)
	}
	atomic.StoreInt64(&c.lastSweepUnix, at.Unix())
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	out := map[string]any{
		"requestsTotal": total,
		"errorsTotal":   errs,
		"avgDurationMs": avg,
		"sweepsTotal":   atomic.LoadUint64(&c.sweepsTotal),
		"sweepFailures": atomic.LoadUint64(&c.sweepFailures),
	}
	if last := atomic.LoadInt64(&c.lastSweepUnix); last > 0 {
		out["lastSweepAt"] = time.Unix(last, 0).UTC().Format(time.RFC3339)
	}
	return out
}
