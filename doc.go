// Package simtemp simulates a temperature-sensor device: a periodic
// producer generates timestamped temperature samples in the background
// and delivers them to one or more consumers through a file-descriptor-like
// interface supporting blocking reads, non-blocking reads, and readiness
// notification (poll/select semantics).
//
// # Quick Start
//
// Start a device with production defaults and read from it:
//
//	dev, err := simtemp.Start(simtemp.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Stop()
//
//	reader := dev.Open(false) // blocking
//	defer reader.Close()
//
//	var buf [simtemp.RecordSize]byte
//	n, err := reader.Read(context.Background(), buf[:])
//	if err != nil {
//		log.Fatal(err)
//	}
//	sample := simtemp.DecodeSample(buf[:n])
//	fmt.Printf("temp=%dmC flags=%#x\n", sample.TempMilliC, sample.Flags)
//
// # Configuration
//
//	cfg := simtemp.Config{
//		SamplingIntervalMs: 50,
//		ThresholdMilliC:    30000,
//		BaseTempMilliC:     35000,
//		VariationMilliC:    10000,
//		Capacity:           128,
//	}
//	dev, err := simtemp.Start(cfg)
//
// # Non-blocking reads and poll
//
//	reader := dev.Open(true) // non-blocking
//	n, err := reader.Read(context.Background(), buf[:])
//	if errors.Is(err, simtemp.ErrWouldBlock) {
//		ready, readable := reader.Poll()
//		if !readable {
//			<-ready // wait for the next readiness signal
//		}
//	}
//
// This package implements only the device core: the periodic generator,
// the bounded ring buffer, and the reader-side blocking/readiness
// discipline. The CLI presentation layer, device-node registration, and
// configuration discovery are deliberately out of scope — they are
// external collaborators that consume this package's Device/Reader API.
package simtemp
