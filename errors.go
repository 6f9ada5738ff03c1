// errors.go: sentinel errors for the simtemp device core
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import "errors"

// Pre-allocated errors to avoid allocations in hot paths.
var (
	// ErrBufferTooSmall is returned by Reader.Read when the caller's buffer
	// is smaller than the fixed 16-byte Sample record.
	ErrBufferTooSmall = errors.New("simtemp: buffer too small for a sample record")

	// ErrWouldBlock is returned by a non-blocking Reader.Read when no
	// sample is currently available.
	ErrWouldBlock = errors.New("simtemp: would block")

	// ErrInterrupted is returned by a blocking Reader.Read whose context
	// was cancelled before a sample became available.
	ErrInterrupted = errors.New("simtemp: read interrupted")

	// ErrDeviceGone is returned by Reader.Read once the owning Device has
	// been stopped and its buffered records have been drained, and by any
	// Read on a closed Reader. Poll does not return errors; it reports a
	// stopped device as readable.
	ErrDeviceGone = errors.New("simtemp: device stopped")

	// ErrInvalidConfig is returned by Start when the supplied Config fails
	// validation.
	ErrInvalidConfig = errors.New("simtemp: invalid configuration")

	// ErrResourceUnavailable is part of the error taxonomy for a failure
	// to create the device's internal resources. Start never returns it:
	// creating the in-memory ring buffer and driver goroutine has no
	// failure path.
	ErrResourceUnavailable = errors.New("simtemp: resource unavailable")
)
