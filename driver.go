// driver.go: periodic sample generator, driven by a drift-free monotonic schedule
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import (
	"context"
	"sync"
	"time"

	timecache "github.com/agilira/go-timecache"
)

// periodicDriver invokes the generator at a fixed interval, enqueues the
// result into a ringBuffer, and signals a waitSet — in that order, every
// tick. Shutdown uses a cancellable context plus a WaitGroup the caller
// can block on, guarded by sync.Once so stop is idempotent.
type periodicDriver struct {
	cfg   *Config
	ring  *ringBuffer
	ws    *waitSet
	clock *timecache.TimeCache
	start time.Time // t0 for monotonic nanosecond timestamps

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func newPeriodicDriver(cfg *Config, ring *ringBuffer, ws *waitSet) *periodicDriver {
	ctx, cancel := context.WithCancel(context.Background())
	d := &periodicDriver{
		cfg:    cfg,
		ring:   ring,
		ws:     ws,
		clock:  timecache.NewWithResolution(time.Millisecond),
		start:  time.Now(),
		ctx:    ctx,
		cancel: cancel,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// now returns the monotonic nanosecond reading since the driver started,
// derived from the cached clock's monotonic component rather than a
// fresh syscall on every tick.
func (d *periodicDriver) now() uint64 {
	elapsed := d.clock.CachedTime().Sub(d.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return uint64(elapsed.Nanoseconds()) // #nosec G115 -- elapsed is non-negative by construction above
}

// run is the ticker loop. It schedules each tick relative to the ideal
// prior instant (next += interval) rather than the actual firing time, so
// jitter never accumulates.
func (d *periodicDriver) run() {
	defer d.wg.Done()
	defer d.clock.Stop()

	interval := d.cfg.Interval()
	next := time.Now().Add(interval)
	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-timer.C:
			d.tick()

			next = next.Add(interval)
			delay := time.Until(next)
			if delay < 0 {
				// Behind schedule; fire again immediately rather than
				// letting the backlog compound, and keep scheduling
				// against the ideal prior tick.
				delay = 0
			}
			timer.Reset(delay)
		}
	}
}

// tick performs exactly: generate -> enqueue -> signal-readiness, with
// the signal happening-after the enqueue so any reader it wakes observes
// at least one record.
func (d *periodicDriver) tick() {
	sample := generate(d.cfg, d.now(), d.cfg.RNG)
	d.ring.put(sample)
	d.ws.signal()
}

// stop prevents further ticks from firing and waits for any in-flight
// tick to complete. Idempotent.
func (d *periodicDriver) stop() {
	d.once.Do(func() {
		d.cancel()
	})
	d.wg.Wait()
}
