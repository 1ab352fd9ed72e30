// Package stats samples the current process for the optional
// diagnostics overlay of the preview player.
package stats

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Sample holds one resource usage reading.
type Sample struct {
	CPUPercent float64
	RSSMiB     float64
	TakenAt    time.Time
}

// Sampler polls the current process at most once per interval, so it
// can be queried from the render loop without adding per-frame cost.
type Sampler struct {
	proc     *process.Process
	interval time.Duration
	last     Sample
	err      error
}

// NewSampler creates a sampler for the current process. An interval
// of 0 defaults to one second.
func NewSampler(interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = time.Second
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	return &Sampler{proc: proc, interval: interval, err: err}
}

// Latest returns the most recent sample, refreshing it first if the
// sampling interval has elapsed. When process inspection is
// unavailable on the platform, it returns a zero sample.
func (self *Sampler) Latest() Sample {
	if self.err != nil {
		return Sample{}
	}
	if !self.last.TakenAt.IsZero() && time.Since(self.last.TakenAt) < self.interval {
		return self.last
	}
	if cpu, err := self.proc.CPUPercent(); err == nil {
		self.last.CPUPercent = cpu
	}
	if mem, err := self.proc.MemoryInfo(); err == nil {
		self.last.RSSMiB = float64(mem.RSS) / (1024 * 1024)
	}
	self.last.TakenAt = time.Now()
	return self.last
}
