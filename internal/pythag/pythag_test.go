package pythag

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/S_A_Exercises/internal/input"
)

func TestGcd(t *testing.T) {
	cases := []struct {
		m, n, want int
	}{
		{6, 9, 3},
		{9, 6, 3},
		{7, 13, 1},
		{48, 18, 6},
		{5, 5, 5},
		{0, 5, 0},
		{5, 0, 0},
		{0, -5, 0},
		{-1, 5, -1},
		{5, -1, -1},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Gcd(c.m, c.n), "Gcd(%d, %d)", c.m, c.n)
	}
}

func TestCheckedGcd(t *testing.T) {
	g, err := CheckedGcd(6, 9)
	require.NoError(t, err)
	assert.Equal(t, 3, g)

	_, err = CheckedGcd(0, 5)
	assert.ErrorIs(t, err, ErrInvalidGcdInput)

	_, err = CheckedGcd(-1, 5)
	assert.ErrorIs(t, err, ErrInvalidGcdInput)
}

func TestCountTriplets(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{-7, 0},
		{0, 0},
		{1, 0},
		{4, 0},
		{5, 1},
		{10, 2},
		// (1,2)x5, (1,4), (2,3), (3,4)
		{25, 8},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, CountTriplets(c.n), "CountTriplets(%d)", c.n)
	}
}

// bruteForce 같은 생성 규칙을 i²+j² <= n 범위에서 직접 세는 기준 구현
func bruteForce(n int) int {
	count := 0
	for i := 1; 2*i*i < n; i++ {
		for j := i + 1; i*i+j*j <= n; j++ {
			a, b := i, j
			for b != 0 {
				a, b = b, a%b
			}
			if a == 1 && (j-i)%2 == 1 {
				count += n / (i*i + j*j)
			}
		}
	}
	return count
}

func TestCountTripletsProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("matches brute force", prop.ForAll(
		func(n int) bool {
			return CountTriplets(n) == bruteForce(n)
		},
		gen.IntRange(0, 5000),
	))

	properties.Property("non-negative and monotonic", prop.ForAll(
		func(n, d int) bool {
			lo := CountTriplets(n)
			return lo >= 0 && lo <= CountTriplets(n+d)
		},
		gen.IntRange(0, 3000),
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("4\n1\n5\n10\n25\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n8\n", out.String())
}

func TestRunZeroCases(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader("0\n"), &out))
	assert.Empty(t, out.String())
}

func TestRunTruncatedInput(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("3\n5\n10\n"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "1\n2\n", out.String())
}

func TestRunMalformedInput(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("2\nabc\n"), &out)
	assert.ErrorIs(t, err, input.ErrMalformed)
	assert.Empty(t, out.String())
}

func BenchmarkCountTriplets10k(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountTriplets(10000)
	}
}

func BenchmarkCountTriplets1M(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountTriplets(1000000)
	}
}
