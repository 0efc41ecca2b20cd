package membench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVerifyCycle_DeterministicPattern verifies the pattern law: after any
// cycle, buf[i] == i mod 256 for every index, regardless of the buffer's
// initial contents.
func TestVerifyCycle_DeterministicPattern(t *testing.T) {
	buf := make([]byte, 1024)
	for i := range buf {
		buf[i] = 0xAA // Arbitrary junk the pattern must overwrite.
	}

	errCount, elapsedNs := verifyCycle(buf)

	// The verify pass runs after the write pass, so even a junk-filled
	// buffer verifies clean on the first cycle.
	assert.Zero(t, errCount)
	assert.Greater(t, elapsedNs, int64(0))

	for i, b := range buf {
		assert.Equal(t, byte(i), b, "pattern mismatch at index %d", i)
	}
}

// TestVerifyCycle_Idempotent verifies that repeated cycles on the same
// buffer always verify clean: the pattern is rewritten identically every
// time.
func TestVerifyCycle_Idempotent(t *testing.T) {
	buf := make([]byte, 4096)

	for i := 0; i < 5; i++ {
		errCount, _ := verifyCycle(buf)
		assert.Zero(t, errCount, "cycle %d reported mismatches", i)
	}
}

// TestVerifyCycle_MutatesBuffer confirms the documented side effect: the
// cycle owns and rewrites the buffer contents.
func TestVerifyCycle_MutatesBuffer(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	_, _ = verifyCycle(buf)
	assert.Equal(t, []byte{0, 1, 2, 3}, buf)
}
