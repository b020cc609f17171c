// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/schollz/progressbar/v3"
)

// StressOptions configures a stress run
type StressOptions struct {
	Keys  int
	Seed  int64
	Batch int
	Index IndexOptions
	// Progress receives the progress bar; nil hides it
	Progress io.Writer
}

// StressReport summarises a stress run
type StressReport struct {
	Inserts   int
	Removes   int
	Lookups   int
	Checks    int
	MaxLen    int
	MaxHeight int
	Bound     int
}

// heightBound is the tallest an AVL tree with n nodes can be, counting
// nodes on the longest root to leaf path.
func heightBound(n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

type stressRun struct {
	idx    *Index
	model  map[string]string
	rng    *rand.Rand
	space  int
	opts   StressOptions
	report StressReport
	bar    *progressbar.ProgressBar
	ops    int
}

// runStress fills an index with random keys, churns it with mixed inserts
// and removals, then drains it, checking the tree against a map after every
// batch of operations.
func runStress(opts StressOptions) (StressReport, error) {
	if opts.Keys <= 0 {
		return StressReport{}, fmt.Errorf("stress needs a positive key count, got %d", opts.Keys)
	}
	if opts.Batch <= 0 {
		opts.Batch = max(1, opts.Keys/100)
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	s := &stressRun{
		idx:   NewIndex(opts.Index),
		model: make(map[string]string, opts.Keys),
		rng:   rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)^0x9e3779b97f4a7c15)),
		space: opts.Keys * 4,
		opts:  opts,
		bar: progressbar.NewOptions(3*opts.Keys,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}

	logger.Debug().Int("keys", opts.Keys).Int64("seed", opts.Seed).Int("batch", opts.Batch).Msg("stress started")

	phases := []struct {
		name string
		step func() error
	}{
		{"fill", s.insertRandom},
		{"churn", s.churn},
		{"drain", s.removeAny},
	}
	for _, phase := range phases {
		s.bar.Describe("🌳 " + phase.name)
		for i := 0; i < opts.Keys; i++ {
			if err := phase.step(); err != nil {
				return s.report, fmt.Errorf("%s phase: %w", phase.name, err)
			}
			if err := s.tick(); err != nil {
				return s.report, fmt.Errorf("%s phase: %w", phase.name, err)
			}
		}
		logger.Debug().Str("phase", phase.name).Int("len", s.idx.Len()).Int("height", s.idx.Height()).Msg("phase done")
	}
	if err := s.check(); err != nil {
		return s.report, err
	}
	_ = s.bar.Finish()

	s.report.Bound = heightBound(s.report.MaxLen)
	return s.report, nil
}

func (s *stressRun) key() string {
	return strconv.Itoa(s.rng.IntN(s.space))
}

func (s *stressRun) insertRandom() error {
	k := s.key()
	v := strconv.Itoa(s.report.Inserts)
	s.idx.Put(k, v)
	s.model[k] = v
	s.report.Inserts++
	return nil
}

func (s *stressRun) removeRandom() error {
	k := s.key()
	_, want := s.model[k]
	if got := s.idx.Delete(k); got != want {
		return fmt.Errorf("Delete(%s) = %v, model says %v", k, got, want)
	}
	delete(s.model, k)
	s.report.Removes++
	return nil
}

// removeAny removes some key still present, when there is one
func (s *stressRun) removeAny() error {
	for k := range s.model {
		if !s.idx.Delete(k) {
			return fmt.Errorf("Delete(%s) missed a present key", k)
		}
		delete(s.model, k)
		s.report.Removes++
		return nil
	}
	return nil
}

func (s *stressRun) lookupRandom() error {
	k := s.key()
	want, ok := s.model[k]
	got, err := s.idx.Lookup(k)
	s.report.Lookups++
	switch {
	case ok && err != nil:
		return fmt.Errorf("Lookup(%s) failed: %w", k, err)
	case !ok && err == nil:
		return fmt.Errorf("Lookup(%s) found a removed key", k)
	case ok && got != want:
		return fmt.Errorf("Lookup(%s) = %q, want %q", k, got, want)
	}
	return nil
}

func (s *stressRun) churn() error {
	switch s.rng.IntN(3) {
	case 0:
		return s.insertRandom()
	case 1:
		return s.removeRandom()
	}
	return s.lookupRandom()
}

func (s *stressRun) tick() error {
	_ = s.bar.Add(1)
	s.report.MaxLen = max(s.report.MaxLen, s.idx.Len())
	s.report.MaxHeight = max(s.report.MaxHeight, s.idx.Height())
	s.ops++
	if s.ops%s.opts.Batch != 0 {
		return nil
	}
	return s.check()
}

func (s *stressRun) check() error {
	s.report.Checks++
	if err := s.idx.Validate(); err != nil {
		return fmt.Errorf("after %d operations: %w", s.ops, err)
	}
	if s.idx.Len() != len(s.model) {
		return fmt.Errorf("after %d operations: tree holds %d keys, model %d", s.ops, s.idx.Len(), len(s.model))
	}
	if h, bound := s.idx.Height(), heightBound(s.idx.Len()); h > bound {
		return fmt.Errorf("after %d operations: height %d exceeds bound %d", s.ops, h, bound)
	}
	return nil
}

func printStressReport(w io.Writer, r StressReport) {
	success, info, _, _, reset := GetANSIColors()
	fmt.Fprintf(w, "\n%s✅ Stress run passed%s\n", success, reset)
	fmt.Fprintf(w, "  inserts: %d, removes: %d, lookups: %d\n", r.Inserts, r.Removes, r.Lookups)
	fmt.Fprintf(w, "  invariant checks: %d\n", r.Checks)
	fmt.Fprintf(w, "  %speak size %d, peak height %d, AVL bound %d%s\n", info, r.MaxLen, r.MaxHeight, r.Bound, reset)
}
