// record.go: fixed-layout Sample record and its wire encoding
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package simtemp

import "encoding/binary"

// RecordSize is the fixed, padding-free wire size of a Sample in bytes.
const RecordSize = 16

// Flag bits carried in Sample.Flags. All bits outside this set are
// reserved and must be zero.
const (
	// FlagNewSample is always set on every record the generator produces.
	FlagNewSample uint32 = 0x01

	// FlagThresholdExceeded is set iff TempMilliC strictly exceeds the
	// configured threshold.
	FlagThresholdExceeded uint32 = 0x02
)

// Sample is the immutable 16-byte unit of data produced by the generator
// and delivered through Reader.Read.
//
// Wire layout (little-endian, no padding):
//
//	offset  size  field
//	0       8     TimestampNs
//	8       4     TempMilliC (int32)
//	12      4     Flags (uint32)
type Sample struct {
	// TimestampNs is a monotonic nanosecond timestamp. Within the stream
	// produced by a single Device it is strictly non-decreasing.
	TimestampNs uint64

	// TempMilliC is the temperature in milli-Celsius (°C * 1000).
	TempMilliC int32

	// Flags is the bitfield described by FlagNewSample / FlagThresholdExceeded.
	Flags uint32
}

// Encode writes the 16-byte wire representation of s into buf, which must
// be at least RecordSize bytes long. Encode never fails; callers that
// cannot guarantee buf's length must check it themselves (Reader.Read
// does, returning ErrBufferTooSmall).
func (s Sample) Encode(buf []byte) {
	_ = buf[RecordSize-1] // bounds check hint, mirrors encoding/binary idioms
	binary.LittleEndian.PutUint64(buf[0:8], s.TimestampNs)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(s.TempMilliC)) // #nosec G115 -- two's complement round-trip is exact
	binary.LittleEndian.PutUint32(buf[12:16], s.Flags)
}

// DecodeSample reads a Sample from the first RecordSize bytes of buf.
// The caller is responsible for ensuring buf is at least RecordSize long.
func DecodeSample(buf []byte) Sample {
	return Sample{
		TimestampNs: binary.LittleEndian.Uint64(buf[0:8]),
		TempMilliC:  int32(binary.LittleEndian.Uint32(buf[8:12])), // #nosec G115 -- two's complement round-trip is exact
		Flags:       binary.LittleEndian.Uint32(buf[12:16]),
	}
}
