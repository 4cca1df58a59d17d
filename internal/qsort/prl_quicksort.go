package qsort

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// ParallelSort 같은 Partition을 쓰되 나뉜 두 구간을 워커 풀 위에서 동시에 정렬한다.
// 슬롯을 얻지 못한 구간은 호출한 고루틴에서 순차 정렬한다.
func ParallelSort[T constraints.Ordered](a []T) {
	if len(a) < 2 {
		return
	}

	parallelQuickSort(sharedSlots(), a, 0, len(a)-1, runtime.NumCPU(), parallelThreshold(len(a)))
}

func parallelQuickSort[T constraints.Ordered](s slots, a []T, low, high, depth, threshold int) {
	if high <= low {
		return
	}
	if depth <= 1 || high-low+1 <= threshold {
		QuickSort(a, low, high)
		return
	}

	p := Partition(a, low, high)

	var wg sync.WaitGroup
	wg.Add(2)
	spawn := func(lo, hi int) {
		defer wg.Done()
		s.fork(
			func() { parallelQuickSort(s, a, lo, hi, depth/2, threshold) },
			func() { QuickSort(a, lo, hi) },
		)
	}
	go spawn(low, p-1)
	go spawn(p+1, high)
	wg.Wait()
}

// parallelThreshold 이 크기 이하의 구간은 순차로 정렬
func parallelThreshold(total int) int {
	switch {
	case total < 1000:
		return total // 작은 데이터는 병렬처리 안함
	case total < 10000:
		return 300
	case total < 100000:
		return 800
	default:
		return 1500
	}
}
