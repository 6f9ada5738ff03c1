// reader.go: per-consumer read/poll/close operations
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import "context"

// Reader is a handle bound to a shared Device. Its own state machine is
// trivial (open -> closed); the interesting state lives in the Device's
// wait-set and ring buffer.
type Reader struct {
	device      *Device
	nonblocking bool
	closed      bool
}

// Read copies the next available Sample's 16-byte wire form into buf and
// returns the number of bytes written (always RecordSize on success).
//
//   - len(buf) < RecordSize fails with ErrBufferTooSmall.
//   - If a record is immediately available, it is dequeued and returned.
//   - Otherwise, in non-blocking mode, fails with ErrWouldBlock.
//   - Otherwise, the caller suspends on the Device's readiness wait-set
//     until data arrives, ctx is cancelled (ErrInterrupted), or the
//     device is stopped (ErrDeviceGone).
//
// ctx carries external cancellation; passing context.Background() makes
// Read block with no deadline beyond the device's own lifecycle.
func (r *Reader) Read(ctx context.Context, buf []byte) (int, error) {
	if r.closed {
		return 0, ErrDeviceGone
	}
	if len(buf) < RecordSize {
		return 0, ErrBufferTooSmall
	}

	for {
		if sample, ok := r.device.ring.get(); ok {
			sample.Encode(buf)
			return RecordSize, nil
		}

		if r.device.isStopped() {
			return 0, ErrDeviceGone
		}

		if r.nonblocking {
			return 0, ErrWouldBlock
		}

		// Register before checking emptiness again: the wait-set
		// guarantees that any put+signal occurring after register is
		// observed, closing the check-then-sleep race.
		woken := r.device.ws.register()
		if r.device.ring.hasData() || r.device.isStopped() {
			continue
		}

		select {
		case <-woken:
			// Either new data arrived, or the device was stopped
			// (closeForever also closes this channel). Loop around to
			// re-check; a spurious wakeup just re-suspends.
		case <-ctx.Done():
			return 0, ErrInterrupted
		}
	}
}

// Poll registers the caller's interest with the readiness wait-set and
// then tests whether data is available, returning a channel that a
// caller's own scheduler can select on or receive from for the
// readiness event, plus whether data was already available at
// registration time. readable is also true once the device has been
// stopped or the reader has been closed, so that the caller's next Read
// reports ErrDeviceGone instead of waiting.
//
// The registration happens before the emptiness check: if a producer
// publishes a record between the check and a naive register-after-check
// sequence, that race would lose the wakeup. Here the returned channel
// is already guaranteed to fire for any signal from this point forward,
// whether or not data happened to be present the instant Poll was called.
func (r *Reader) Poll() (ready <-chan struct{}, readable bool) {
	if r.closed {
		closedCh := make(chan struct{})
		close(closedCh)
		return closedCh, true
	}
	ready = r.device.ws.register()
	readable = r.device.ring.hasData() || r.device.isStopped()
	return ready, readable
}

// Close releases the reader handle. It does not affect the Device or any
// other open reader.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}
