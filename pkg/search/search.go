// Package search coordinates the brute-force key search: it owns the shared
// atomic progress and result counters and drives CPU workers plus an
// optional accelerator worker against them. Workers share nothing else; the
// derivation mode and matcher are immutable once the search starts.
package search

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nondejus/lisk-vanity/internal/config"
	"github.com/nondejus/lisk-vanity/internal/logger"
	"github.com/nondejus/lisk-vanity/pkg/gpu"
	"github.com/nondejus/lisk-vanity/pkg/types"
	"github.com/nondejus/lisk-vanity/pkg/worker"
)

const progressInterval = 100 * time.Millisecond

// Matcher is the shared accept/reject predicate plus its difficulty
// estimate for progress reporting.
type Matcher interface {
	worker.Matcher
	EstimatedAttempts() float64
}

// Search owns the shared state of one run. Attempts is a best-effort
// counter, only touched when progress reporting is on; found is exact and
// gates termination.
type Search struct {
	config  *config.Config
	log     *logger.Logger
	mode    types.DerivationMode
	matcher Matcher
	device  gpu.Device

	attempts uint64
	found    uint64

	startTime   time.Time
	done        chan struct{}
	once        sync.Once
	wg          sync.WaitGroup
	progressOut io.Writer
}

// New creates a search. device may be nil for a CPU-only run.
func New(cfg *config.Config, log *logger.Logger, mode types.DerivationMode, m Matcher, device gpu.Device) *Search {
	return &Search{
		config:      cfg,
		log:         log,
		mode:        mode,
		matcher:     m,
		device:      device,
		done:        make(chan struct{}),
		progressOut: os.Stderr,
	}
}

// Run spawns the workers and returns the solution stream. The channel closes
// once every worker has stopped: after the limit is reached, or after Stop.
func (s *Search) Run() <-chan types.Solution {
	s.startTime = time.Now()
	out := make(chan types.Solution, s.config.Threads+2)

	for i := 0; i < s.config.Threads; i++ {
		s.wg.Add(1)
		go s.cpuWorker(out)
	}
	if s.device != nil {
		s.wg.Add(1)
		go s.deviceWorker(out)
	}
	if !s.config.NoProgress {
		go s.reportProgress()
	}

	go func() {
		s.wg.Wait()
		close(out)
	}()
	return out
}

// Stop requests a cooperative shutdown. Safe to call from any goroutine,
// any number of times.
func (s *Search) Stop() {
	s.once.Do(func() { close(s.done) })
}

// Stats returns a snapshot of the shared counters. Safe to call
// concurrently.
func (s *Search) Stats() types.Stats {
	attempts := atomic.LoadUint64(&s.attempts)
	elapsed := time.Since(s.startTime)

	var rate float64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(attempts) / secs
	}

	return types.Stats{
		Attempts: attempts,
		Found:    atomic.LoadUint64(&s.found),
		KeysPerS: rate,
		Elapsed:  elapsed,
	}
}

// recordFound bumps the shared found counter and reports whether this worker
// should stop. The check happens after the fetch-and-add, so when several
// workers cross the limit concurrently at most workers-1 extra solutions are
// emitted. That bounded overshoot is accepted behavior, not a bug.
func (s *Search) recordFound() bool {
	n := atomic.AddUint64(&s.found, 1)
	if s.config.Limit != 0 && n >= s.config.Limit {
		s.Stop()
		return true
	}
	return false
}

// cpuWorker runs the draw/derive/test/increment cycle until the search
// stops. All of its mutable state lives in the worker; only the counters are
// shared.
func (s *Search) cpuWorker(out chan<- types.Solution) {
	defer s.wg.Done()

	w := worker.New(s.mode, s.matcher)
	if err := w.Reseed(); err != nil {
		s.log.Errorf("worker seed failed: %v", err)
		s.Stop()
		return
	}

	for {
		select {
		case <-s.done:
			return
		default:
		}

		sol, found, err := w.Step()
		if err != nil {
			// Should not happen for well-formed random input; the batch
			// is abandoned and the worker starts over on fresh material.
			s.log.Errorf("derivation failed: %v", err)
			if err := w.Reseed(); err != nil {
				s.log.Errorf("worker reseed failed: %v", err)
				s.Stop()
				return
			}
			continue
		}
		if !found {
			if !s.config.NoProgress {
				atomic.AddUint64(&s.attempts, 1)
			}
			continue
		}

		out <- sol
		if s.recordFound() {
			return
		}
		if err := w.Reseed(); err != nil {
			s.log.Errorf("worker reseed failed: %v", err)
			s.Stop()
			return
		}
	}
}

// deviceWorker submits randomized batches to the accelerator. Every
// candidate the device returns is re-derived and re-tested through the same
// mode and matcher the CPU workers use; divergent on-device arithmetic must
// never produce a trusted solution.
func (s *Search) deviceWorker(out chan<- types.Solution) {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return
		default:
		}

		var base types.KeyMaterial
		if _, err := rand.Read(base[:]); err != nil {
			s.log.Errorf("batch seed failed: %v", err)
			s.Stop()
			return
		}

		candidate, err := s.device.ComputeBatch(base)
		if err != nil {
			s.log.Fatalf("accelerator batch failed: %v", err)
		}
		if !s.config.NoProgress {
			atomic.AddUint64(&s.attempts, s.device.BatchSize())
		}
		if candidate == nil {
			continue
		}

		pub, err := s.mode.Derive(*candidate)
		if err != nil || !s.matcher.Matches(pub) {
			s.log.Warnf("accelerator returned non-matching candidate: %s",
				strings.ToUpper(hex.EncodeToString(candidate[:])))
			continue
		}

		out <- types.Solution{Material: *candidate, PublicKey: pub, Mode: s.mode}
		if s.recordFound() {
			return
		}
	}
}

// reportProgress rewrites a single status line on a short interval. Reads
// are advisory snapshots; the reporter has no effect on correctness.
func (s *Search) reportProgress() {
	estimated := s.matcher.EstimatedAttempts()
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			stats := s.Stats()
			percent := 100 * float64(stats.Attempts) / estimated
			fmt.Fprintf(s.progressOut, "\rTried %d keys (~%.2f%%; %.1f keys/s)",
				stats.Attempts, percent, stats.KeysPerS)
		}
	}
}
