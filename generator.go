// generator.go: pure sample generation from configuration and an entropy source
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import (
	"math/rand/v2"
	"sync"
)

// RNG produces uniformly distributed 32-bit values. Implementations must
// be safe for concurrent use if the same RNG is shared across Devices;
// a single Device only ever calls its RNG from its own periodic driver
// goroutine, so no internal synchronization is required there.
type RNG interface {
	Uint32() uint32
}

// defaultRNG wraps a math/rand/v2 PCG source, seeded from the global
// generator, behind the RNG interface. A mutex guards the source so one
// defaultRNG is safe to share between goroutines.
type defaultRNG struct {
	mu  sync.Mutex
	src *rand.Rand
}

func newDefaultRNG() *defaultRNG {
	return &defaultRNG{src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (r *defaultRNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Uint32()
}

// generate computes the next Sample from cfg, the current monotonic-clock
// reading now (nanoseconds), and rng. It is a pure function: identical
// inputs always yield identical output, which makes it straightforward to
// property-test in isolation from the periodic driver and ring buffer.
//
// Computation:
//  1. v = rng() mod (2*variation+1) - variation      (uniform over [-variation, +variation])
//  2. temp = base + v
//  3. flags = NEW_SAMPLE, plus THRESHOLD_EXCEEDED iff temp > threshold
func generate(cfg *Config, nowNs uint64, rng RNG) Sample {
	variation := int64(cfg.VariationMilliC)
	span := 2*variation + 1

	v := int64(rng.Uint32()) % span
	v -= variation

	temp := int32(int64(cfg.BaseTempMilliC) + v) // #nosec G115 -- range validated at Config.Validate time

	flags := FlagNewSample
	if temp > cfg.ThresholdMilliC {
		flags |= FlagThresholdExceeded
	}

	return Sample{
		TimestampNs: nowNs,
		TempMilliC:  temp,
		Flags:       flags,
	}
}
