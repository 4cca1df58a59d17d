// 짝수 크기 연결 요소만 남도록 잘라낼 수 있는 간선 수를 출력한다.
//
// 입력: "N M", 이어서 M개의 "u v" (u가 v의 자식). 루트는 1.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rlaau/S_A_Exercises/internal/eventree"
)

func main() {
	logrus.SetOutput(os.Stderr)
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(stdin io.Reader, stdout io.Writer) int {
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if err := eventree.Run(stdin, out); err != nil {
		logrus.WithError(err).Warn("입력 처리 중단")
	}
	return 0
}
