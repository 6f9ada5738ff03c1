package simtemp

import "testing"

func TestSampleEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Sample{
		{TimestampNs: 0, TempMilliC: 0, Flags: 0},
		{TimestampNs: 1234567890123, TempMilliC: 35000, Flags: FlagNewSample},
		{TimestampNs: ^uint64(0), TempMilliC: -40000, Flags: FlagNewSample | FlagThresholdExceeded},
		{TimestampNs: 42, TempMilliC: 2147483647, Flags: 0x03},
	}

	for _, want := range cases {
		var buf [RecordSize]byte
		want.Encode(buf[:])
		got := DecodeSample(buf[:])
		if got != want {
			t.Fatalf("round-trip mismatch: want %+v, got %+v", want, got)
		}
	}
}

func TestRecordSizeIsSixteenBytes(t *testing.T) {
	if RecordSize != 16 {
		t.Fatalf("RecordSize = %d, want 16", RecordSize)
	}

	var s Sample
	buf := make([]byte, RecordSize)
	s.Encode(buf) // must not panic with an exactly-sized buffer
}

func TestFlagBitValues(t *testing.T) {
	if FlagNewSample != 0x01 {
		t.Fatalf("FlagNewSample = %#x, want 0x01", FlagNewSample)
	}
	if FlagThresholdExceeded != 0x02 {
		t.Fatalf("FlagThresholdExceeded = %#x, want 0x02", FlagThresholdExceeded)
	}
}
