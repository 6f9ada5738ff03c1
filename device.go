// device.go: lifecycle controller — owns the ring buffer, driver, and wait-set
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import (
	"sync"
	"sync/atomic"
)

// Device is the lifecycle handle for a running simulated sensor: Start
// returns one, Stop consumes it. It exclusively owns the ring buffer,
// the periodic driver, the readiness wait-set, and the configuration
// snapshot. Reader handles opened against a Device hold only a shared,
// non-owning reference.
type Device struct {
	cfg    Config
	ring   *ringBuffer
	ws     *waitSet
	driver *periodicDriver

	stopped  atomic.Bool
	stopOnce sync.Once
}

// Start validates cfg, initializes an empty ring buffer and wait-set, and
// starts the periodic driver. Emission begins immediately; the first
// record is produced no later than cfg's resolved sampling interval
// after Start returns.
func Start(cfg Config) (*Device, error) {
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RNG == nil {
		cfg.RNG = newDefaultRNG()
	}

	ring := newRingBuffer(cfg.Capacity)
	ws := newWaitSet()

	dev := &Device{
		cfg:  cfg,
		ring: ring,
		ws:   ws,
	}
	dev.driver = newPeriodicDriver(&dev.cfg, ring, ws)

	return dev, nil
}

// Open returns a reader handle bound to this Device. Multiple readers may
// coexist and race for records over the single shared FIFO.
func (d *Device) Open(nonblocking bool) *Reader {
	return &Reader{device: d, nonblocking: nonblocking}
}

// Stop stops the periodic driver and delivers a terminal readiness
// signal that wakes every suspended reader with ErrDeviceGone. Stop is
// idempotent and safe to call with readers still holding open handles:
// those handles are invalidated only by their own Close, but reads
// issued on them after Stop return ErrDeviceGone once any records
// buffered before Stop have been drained.
func (d *Device) Stop() {
	d.stopOnce.Do(func() {
		d.driver.stop()
		d.stopped.Store(true)
		d.ws.closeForever()
	})
}

// Stats is a point-in-time snapshot of device activity, exposed for
// tests and for an embedding host's own monitoring.
type Stats struct {
	Produced      uint64
	Delivered     uint64
	OverflowCount uint64
	BufferFill    uint64
	Capacity      uint64
}

// Stats returns a snapshot of the device's counters. Safe to call
// concurrently, including after Stop.
func (d *Device) Stats() Stats {
	return Stats{
		Produced:      d.ring.produced.Load(),
		Delivered:     d.ring.delivered.Load(),
		OverflowCount: d.ring.overflowCount.Load(),
		BufferFill:    d.ring.fill(),
		Capacity:      d.ring.capacity(),
	}
}

func (d *Device) isStopped() bool {
	return d.stopped.Load()
}
