// 정수 배열을 읽어 정렬 전/후를 출력한다.
//
// 입력: n (최대 50), 이어서 n개의 정수.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/rlaau/S_A_Exercises/internal/qsort"
)

func main() {
	logrus.SetOutput(os.Stderr)
	os.Exit(run(os.Stdin, os.Stdout))
}

// run 종료 코드를 돌려준다. 배열 크기 오류만 1, 나머지 입력 오류는 경고 후 0.
func run(stdin io.Reader, stdout io.Writer) int {
	out := bufio.NewWriter(stdout)
	err := qsort.Run(stdin, out)
	out.Flush()

	switch {
	case err == nil:
	case errors.Is(err, qsort.ErrCapacityExceeded), errors.Is(err, qsort.ErrNegativeSize):
		// 고정 용량을 넘는 입력은 메모리를 넘겨 쓰지 않고 실패로 끝낸다
		logrus.WithError(err).Error("배열 크기 오류")
		return 1
	default:
		logrus.WithError(err).Warn("입력 처리 중단")
	}
	return 0
}
