package pythag

import "github.com/cockroachdb/errors"

// ErrInvalidGcdInput 0 또는 음수 입력 (Gcd의 센티널 값에 해당)
var ErrInvalidGcdInput = errors.New("gcd: inputs must be positive")

// Gcd 유클리드 호제법.
// 둘 중 하나라도 0이면 0, 음수면 -1을 센티널로 돌려준다. gcd(0, x) = x 가 아님에 주의.
func Gcd(m, n int) int {
	if m == 0 || n == 0 {
		return 0
	}
	if m < 0 || n < 0 {
		return -1
	}

	for {
		r := m % n
		if r == 0 {
			return n
		}
		m, n = n, r
	}
}

// CheckedGcd 센티널 대신 에러로 구분하는 래퍼
func CheckedGcd(m, n int) (int, error) {
	g := Gcd(m, n)
	if g <= 0 {
		return 0, errors.Wrapf(ErrInvalidGcdInput, "gcd(%d, %d)", m, n)
	}
	return g, nil
}
