// Package pythag 상한 N 이하의 (스케일된) 피타고라스 삼조를 세는 연습 문제.
//
// 서로소이고 홀짝이 다른 (i, j) 쌍으로 원시 삼조를 만들고,
// 각 쌍마다 k*(i²+j²) <= N 인 모든 양의 정수 k를 하나씩 센다.
// 상한 비교는 빗변 c가 아니라 i²+j² 값 자체로 한다.
package pythag

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/S_A_Exercises/internal/input"
)

// CountTriplets 상한 n에 대한 삼조 개수
func CountTriplets(n int) int {
	// 음수의 제곱근은 정의되지 않으므로 미리 걸러낸다
	if n <= 0 {
		return 0
	}

	limit := int(math.Sqrt(float64(n)))
	count := 0
	for i := 1; i <= limit; i++ {
		for j := i + 1; j <= limit; j++ {
			if Gcd(i, j) != 1 || (j-i)%2 != 1 {
				continue
			}
			num := i*i + j*j
			// 배수를 하나씩 시도 (닫힌 식으로 바꾸지 않음)
			for k := 1; k*num <= n; k++ {
				count++
			}
		}
	}
	return count
}

// Run 테스트 케이스 수 T와 T개의 N을 읽어 N마다 개수를 한 줄씩 출력한다.
// 입력이 중간에 끊기면 그때까지의 출력은 유지한 채 에러를 돌려준다.
func Run(r io.Reader, w io.Writer) error {
	sc := input.NewScanner(r)

	t, err := sc.Int()
	if err != nil {
		return errors.Wrap(err, "read test case count")
	}

	for ; t > 0; t-- {
		n, err := sc.Int()
		if err != nil {
			return errors.Wrapf(err, "read bound (%d cases left)", t)
		}
		if _, err := fmt.Fprintln(w, CountTriplets(n)); err != nil {
			return errors.Wrap(err, "write count")
		}
	}
	return nil
}
