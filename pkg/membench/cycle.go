package membench

import "github.com/shivanshkc/membench/pkg/timer"

// sink receives the accumulator of every read pass. Writing it to a
// package-level variable keeps the compiler from proving the reads
// unobservable and eliding the pass entirely.
var sink uint8

// verifyCycle performs one timed read-write-verify pass over buf and
// returns the mismatch count and the elapsed nanoseconds of the pass.
//
// The order is fixed: a full sequential read that XOR-accumulates every
// byte, a full write of the verification pattern (buf[i] = i mod 256), and
// a full sequential read that counts bytes deviating from the pattern.
// Mismatches are counted, never raised as errors: the point is to measure
// and report memory integrity, and aborting early would bias the timing.
//
// The pattern is rewritten identically on every call, so from the second
// cycle onward a healthy memory region always verifies clean.
func verifyCycle(buf []byte) (errCount uint64, elapsedNs int64) {
	var t timer.Timer
	t.Start()

	var acc uint8
	for _, b := range buf {
		acc ^= b
	}
	sink = acc

	for i := range buf {
		buf[i] = byte(i)
	}

	for i, b := range buf {
		if b != byte(i) {
			errCount++
		}
	}

	return errCount, t.ElapsedNanoseconds()
}
