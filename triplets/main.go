// 상한 N마다 스케일된 피타고라스 삼조 개수를 출력한다.
//
// 입력: T, 이어서 T개의 N. 출력: N마다 한 줄.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rlaau/S_A_Exercises/internal/pythag"
)

func main() {
	logrus.SetOutput(os.Stderr)
	os.Exit(run(os.Stdin, os.Stdout))
}

// run 잘못된 입력은 경고만 남기고 종료 코드는 항상 0
func run(stdin io.Reader, stdout io.Writer) int {
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if err := pythag.Run(stdin, out); err != nil {
		logrus.WithError(err).Warn("입력 처리 중단")
	}
	return 0
}
