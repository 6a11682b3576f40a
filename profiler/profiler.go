// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profiler

import (
	"math/rand/v2"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treeset/fault"
	"github.com/bitmark-inc/treeset/orderedset"
)

// Factory - create the empty set to be measured
type Factory func() orderedset.Set[int]

// Sample - one batch: the set size and mean nanoseconds per operation
type Sample struct {
	Size        int
	Nanoseconds float64
}

// Statistics - the three measured series
type Statistics struct {
	Insertion []Sample
	Access    []Sample
	Deletion  []Sample
}

// Profiler - holds the workload generator and the accumulated samples
type Profiler struct {
	log      *logger.L
	factory  Factory
	cycles   int
	random   *rand.Rand
	progress *rate.Limiter
	stats    Statistics
}

// progress messages are limited to one per second
const progressInterval = time.Second

// New - create a profiler
//
// a zero seed selects a time based one
func New(factory Factory, cycles int, seed uint64, log *logger.L) (*Profiler, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if cycles <= 0 {
		return nil, fault.ErrInvalidCycles
	}
	if 0 == seed {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("cycles: %d  seed: %d", cycles, seed)

	return &Profiler{
		log:      log,
		factory:  factory,
		cycles:   cycles,
		random:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		progress: rate.NewLimiter(rate.Every(progressInterval), 1),
	}, nil
}

// Measure - run one complete grow then shrink workload and append the
// samples to the statistics
func (p *Profiler) Measure(maxSize int) error {
	if maxSize <= 0 {
		return fault.ErrInvalidMaximumSize
	}

	set := p.factory()
	cycles := p.cycles
	limit := 2 * maxSize

	// fill a buffer with random keys in advance
	keys := make([]int, limit+cycles)
	for i := range keys {
		keys[i] = int(p.random.Int32())
	}

	p.log.Infof("measure: maximum size: %d  cycles: %d", maxSize, cycles)

	n := 0
	for set.Count() < maxSize && n < limit {
		startSize := set.Count()
		start := time.Now()
		for i := 0; i < cycles; i += 1 {
			set.Insert(keys[n])
			n += 1
		}
		d := time.Since(start)
		endSize := set.Count()
		p.stats.Insertion = append(p.stats.Insertion, sample((startSize+endSize)/2, d, cycles))
		p.report("insertion", endSize)
	}

	n = 0
	for set.Count() > 0 && n < limit {
		startSize := set.Count()
		start := time.Now()
		for i := 0; i < cycles; i += 1 {
			set.Contains(keys[n])
			n += 1
		}
		d := time.Since(start)
		p.stats.Access = append(p.stats.Access, sample(startSize, d, cycles))

		// delete the same keys that were just looked up
		n -= cycles
		start = time.Now()
		for i := 0; i < cycles; i += 1 {
			set.Delete(keys[n])
			n += 1
		}
		d = time.Since(start)
		endSize := set.Count()
		p.stats.Deletion = append(p.stats.Deletion, sample((startSize+endSize)/2, d, cycles))
		p.report("deletion", endSize)
	}

	p.log.Infof("measure: insertion: %d  access: %d  deletion: %d  samples", len(p.stats.Insertion), len(p.stats.Access), len(p.stats.Deletion))
	return nil
}

// Statistics - the samples collected so far
func (p *Profiler) Statistics() Statistics {
	return p.stats
}

// Reset - discard all samples
func (p *Profiler) Reset() {
	p.stats = Statistics{}
}

func (p *Profiler) report(phase string, size int) {
	if p.progress.Allow() {
		p.log.Infof("%s: size: %d", phase, size)
	}
}

func sample(size int, d time.Duration, cycles int) Sample {
	return Sample{
		Size:        size,
		Nanoseconds: float64(d.Nanoseconds()) / float64(cycles),
	}
}
