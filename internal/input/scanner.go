// Package input 표준 입력에서 공백/개행으로 구분된 정수 토큰을 읽는다.
package input

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrMalformed 정수로 해석할 수 없는 토큰
var ErrMalformed = errors.New("malformed integer token")

// Scanner 정수 토큰 스캐너
type Scanner struct {
	sc     *bufio.Scanner
	tokens int
}

// NewScanner 64KB 버퍼를 쓰는 토큰 스캐너 생성
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Int 다음 정수 토큰. 입력이 끝나면 io.EOF를 그대로 돌려준다.
func (s *Scanner) Int() (int, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, errors.Wrap(err, "scan input")
		}
		return 0, io.EOF
	}
	s.tokens++
	tok := s.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "token %d %q", s.tokens, tok)
	}
	return n, nil
}

// Ints n개의 정수를 연속으로 읽는다
func (s *Scanner) Ints(n int) ([]int, error) {
	out := make([]int, 0, max(n, 0))
	for range n {
		v, err := s.Int()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// All 입력 끝까지 모든 정수를 읽는다
func (s *Scanner) All() ([]int, error) {
	var out []int
	for {
		v, err := s.Int()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
