package bloom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoFalseNegatives(t *testing.T) {
	f := New(10000, 0.01)
	for n := uint64(0); n < 10000; n++ {
		f.AddUint64(n)
	}
	for n := uint64(0); n < 10000; n++ {
		if !f.ContainsUint64(n) {
			t.Fatalf("ContainsUint64(%d) = false after Add", n)
		}
	}
	assert.Equal(t, uint64(10000), f.Items())
}

func TestFalsePositiveRate(t *testing.T) {
	f := New(10000, 0.01)
	for n := uint64(0); n < 10000; n++ {
		f.AddUint64(n)
	}

	fp := 0
	for n := uint64(1 << 40); n < 1<<40+20000; n++ {
		if f.ContainsUint64(n) {
			fp++
		}
	}
	// 목표 1%, 넉넉히 5% 미만이면 통과
	assert.Less(t, float64(fp)/20000, 0.05)

	setBits, fill, est := f.Stats()
	assert.Positive(t, setBits)
	assert.Greater(t, fill, 0.0)
	assert.Less(t, est, 0.05)
}

func TestEmptyFilter(t *testing.T) {
	f := New(0, 0.01)
	assert.False(t, f.Contains([]byte("missing")))
	f.Add([]byte("present"))
	assert.True(t, f.Contains([]byte("present")))
}
