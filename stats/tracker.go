package stats

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
)

// DefaultReportInterval is how often a RenderTimeTracker reports.
const DefaultReportInterval = 5 * time.Second

// tracked lists the backends in report order.
var tracked = []backend.Backend{backend.OpenGL, backend.Vulkan, backend.DirectX11, backend.DirectX12}

// Entry is one line of a report.
type Entry struct {
	Backend backend.Backend
	Share   float64 // percent of the total render time
	AvgMS   float64
	Samples int
}

// Report summarizes one interval.
type Report struct {
	Entries []Entry
	TotalMS float64
}

// String formats the report, one backend per line.
func (r Report) String() string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	for _, e := range r.Entries {
		p.Fprintf(&b, "%s: %.1f%% (avg %.3f ms over %d frames)\n", e.Backend, e.Share, e.AvgMS, e.Samples)
	}
	return b.String()
}

type sample struct {
	total time.Duration
	count int
}

// TrackerOption configures a RenderTimeTracker.
type TrackerOption func(*RenderTimeTracker)

// WithInterval sets the report interval.
func WithInterval(d time.Duration) TrackerOption {
	return func(t *RenderTimeTracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now Clock) TrackerOption {
	return func(t *RenderTimeTracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithReportFunc receives every report in addition to the log.
func WithReportFunc(fn func(Report)) TrackerOption {
	return func(t *RenderTimeTracker) {
		t.onReport = fn
	}
}

// RenderTimeTracker accumulates render time per backend and reports the
// split at a fixed interval. It is not safe for concurrent use.
type RenderTimeTracker struct {
	now      Clock
	interval time.Duration
	onReport func(Report)
	enabled  bool

	start   time.Time
	samples map[backend.Backend]*sample
}

// NewRenderTimeTracker creates an enabled tracker.
func NewRenderTimeTracker(opts ...TrackerOption) *RenderTimeTracker {
	t := &RenderTimeTracker{
		now:      time.Now,
		interval: DefaultReportInterval,
		enabled:  true,
		samples:  make(map[backend.Backend]*sample, len(tracked)),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.start = t.now()
	return t
}

// SetEnabled turns reporting on or off. Samples are still collected.
func (t *RenderTimeTracker) SetEnabled(on bool) {
	t.enabled = on
}

// Enabled reports whether reports are emitted.
func (t *RenderTimeTracker) Enabled() bool {
	return t.enabled
}

// Time runs fn and records its duration for b.
func (t *RenderTimeTracker) Time(b backend.Backend, fn func()) {
	start := t.now()
	fn()
	t.Record(b, t.now().Sub(start))
}

// Record adds one sample for b. Samples for None are ignored. When the
// report interval has elapsed, a report is emitted and the samples reset.
func (t *RenderTimeTracker) Record(b backend.Backend, d time.Duration) {
	if b == backend.None {
		return
	}
	s := t.samples[b]
	if s == nil {
		s = &sample{}
		t.samples[b] = s
	}
	s.total += d
	s.count++

	if t.now().Sub(t.start) < t.interval {
		return
	}
	r := t.Snapshot()
	t.Reset()
	if !t.enabled || len(r.Entries) == 0 {
		return
	}
	g3d.Logger().Info("render time report", "total_ms", r.TotalMS, "report", r.String())
	if t.onReport != nil {
		t.onReport(r)
	}
}

// Snapshot builds a report from the current samples without resetting.
// Backends with no samples are skipped.
func (t *RenderTimeTracker) Snapshot() Report {
	var total time.Duration
	for _, s := range t.samples {
		total += s.total
	}
	r := Report{TotalMS: ms(total)}
	for _, b := range tracked {
		s := t.samples[b]
		if s == nil || s.count == 0 {
			continue
		}
		e := Entry{Backend: b, AvgMS: ms(s.total) / float64(s.count), Samples: s.count}
		if total > 0 {
			e.Share = 100 * float64(s.total) / float64(total)
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

// Reset clears all samples and restarts the interval.
func (t *RenderTimeTracker) Reset() {
	clear(t.samples)
	t.start = t.now()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
