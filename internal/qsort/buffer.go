package qsort

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/S_A_Exercises/internal/input"
)

// Capacity 입력 배열의 최대 길이
const Capacity = 50

var (
	// ErrCapacityExceeded 요청 길이가 Capacity를 넘음
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNegativeSize 음수 길이
	ErrNegativeSize = errors.New("negative size")
)

// Buffer 고정 용량 배열 위의 가변 길이 뷰
type Buffer struct {
	slots [Capacity]int
	n     int
}

// NewBuffer 길이 n의 버퍼. 용량을 넘으면 ErrCapacityExceeded.
func NewBuffer(n int) (*Buffer, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "n=%d", n)
	}
	if n > Capacity {
		return nil, errors.Wrapf(ErrCapacityExceeded, "n=%d, capacity=%d", n, Capacity)
	}
	return &Buffer{n: n}, nil
}

// Values 버퍼 내용. 복사본이 아니라 같은 저장소를 가리킨다.
func (b *Buffer) Values() []int {
	return b.slots[:b.n]
}

// Len 논리적 길이
func (b *Buffer) Len() int { return b.n }

// Sort 버퍼를 제자리 정렬
func (b *Buffer) Sort() {
	QuickSort(b.Values(), 0, b.n-1)
}

// String 공백으로 구분한 원소 목록
func (b *Buffer) String() string {
	parts := make([]string, b.n)
	for i, v := range b.Values() {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Run 원소 수 n과 n개의 정수를 읽어 정렬 전/후 배열을 출력한다.
func Run(r io.Reader, w io.Writer) error {
	sc := input.NewScanner(r)

	n, err := sc.Int()
	if err != nil {
		return errors.Wrap(err, "read element count")
	}
	buf, err := NewBuffer(n)
	if err != nil {
		return err
	}

	vals := buf.Values()
	for i := range vals {
		if vals[i], err = sc.Int(); err != nil {
			return errors.Wrapf(err, "read element %d of %d", i+1, n)
		}
	}

	if _, err := fmt.Fprintf(w, "Unsorted elements:\n%s\n", buf); err != nil {
		return errors.Wrap(err, "write unsorted")
	}
	buf.Sort()
	if _, err := fmt.Fprintf(w, "Sorted elements:\n%s\n", buf); err != nil {
		return errors.Wrap(err, "write sorted")
	}
	return nil
}
