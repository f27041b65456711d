// Package profiling implements the observational collaborator of the
// comparison pipelines: human-readable status lines and start/stop markers
// around pipeline stages. Recorders never influence results.
package profiling

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"go.dedis.ch/onet/v3/log"
)

// Stage identifies a step of a comparison pipeline.
type Stage string

const (
	StagePreprocess = Stage("preprocess")
	StageHybrid     = Stage("hybrid")
	StageA2B        = Stage("a2b")
	StageB2A        = Stage("b2a")
	StageReduce     = Stage("reduce")
	StageTest       = Stage("test")
	StageTotal      = Stage("total")
)

// Recorder receives status lines and stage markers.
type Recorder interface {
	Status(msg string)
	Start(stage Stage)
	Stop(stage Stage)
}

// Nop is a Recorder discarding everything.
type Nop struct{}

func (Nop) Status(string) {}
func (Nop) Start(Stage)   {}
func (Nop) Stop(Stage)    {}

// Entry is a single timing measurement.
type Entry struct {
	Stage Stage
	Dur   time.Duration
}

// LogRecorder prints status lines through the onet logger at
// the given level and accumulates the duration of every stage.
type LogRecorder struct {
	mu      sync.Mutex
	level   int
	started map[Stage]time.Time
	record  []Entry
}

// NewLogRecorder returns a LogRecorder printing status lines at the given
// onet debug level. Level 0 always prints.
func NewLogRecorder(level int) *LogRecorder {
	return &LogRecorder{
		level:   level,
		started: make(map[Stage]time.Time),
	}
}

// Status prints msg.
func (r *LogRecorder) Status(msg string) {
	switch r.level {
	case 0:
		log.Info(msg)
	case 1:
		log.Lvl1(msg)
	case 2:
		log.Lvl2(msg)
	default:
		log.Lvl3(msg)
	}
}

// Start marks the beginning of stage.
func (r *LogRecorder) Start(stage Stage) {
	r.mu.Lock()
	r.started[stage] = time.Now()
	r.mu.Unlock()
}

// Stop marks the end of stage and records its duration.
// A Stop without a matching Start is ignored.
func (r *LogRecorder) Stop(stage Stage) {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	start, ok := r.started[stage]
	if !ok {
		return
	}
	delete(r.started, stage)
	r.record = append(r.record, Entry{Stage: stage, Dur: now.Sub(start)})
}

// SnapshotAndReset returns the collected timing entries and clears them.
func (r *LogRecorder) SnapshotAndReset() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.record))
	copy(out, r.record)
	r.record = nil
	return out
}

// StageSummary aggregates the durations, in milliseconds, of one stage.
type StageSummary struct {
	Stage  Stage
	Count  int
	Mean   float64
	Median float64
	P95    float64
	StdDev float64
}

func (s StageSummary) String() string {
	return fmt.Sprintf("%-10s n=%-6d mean=%.3fms median=%.3fms p95=%.3fms std=%.3fms",
		s.Stage, s.Count, s.Mean, s.Median, s.P95, s.StdDev)
}

// Summarize aggregates entries per stage, sorted by stage name.
func Summarize(entries []Entry) (summaries []StageSummary, err error) {

	values := make(map[Stage][]float64)
	for _, e := range entries {
		values[e.Stage] = append(values[e.Stage], float64(e.Dur.Nanoseconds())/1e6)
	}

	names := make([]string, 0, len(values))
	for stage := range values {
		names = append(names, string(stage))
	}
	sort.Strings(names)

	for _, name := range names {
		data := stats.Float64Data(values[Stage(name)])

		s := StageSummary{Stage: Stage(name), Count: data.Len()}

		if s.Mean, err = data.Mean(); err != nil {
			return nil, fmt.Errorf("cannot Summarize: stage %s: %w", name, err)
		}

		if s.Median, err = data.Median(); err != nil {
			return nil, fmt.Errorf("cannot Summarize: stage %s: %w", name, err)
		}

		if s.P95, err = data.Percentile(95); err != nil {
			return nil, fmt.Errorf("cannot Summarize: stage %s: %w", name, err)
		}

		if s.StdDev, err = data.StandardDeviation(); err != nil {
			return nil, fmt.Errorf("cannot Summarize: stage %s: %w", name, err)
		}

		summaries = append(summaries, s)
	}

	return
}
