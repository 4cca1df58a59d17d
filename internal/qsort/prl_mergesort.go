package qsort

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// ParallelMergeSort 두 절반을 워커 풀 위에서 동시에 정렬한 뒤 병합한다
func ParallelMergeSort[T constraints.Ordered](a []T) []T {
	return parallelMergeSort(sharedSlots(), a, runtime.NumCPU(), parallelThreshold(len(a)))
}

func parallelMergeSort[T constraints.Ordered](s slots, a []T, depth, threshold int) []T {
	if depth <= 1 || len(a) <= max(threshold, 16) {
		return MergeSort(a)
	}

	mid := len(a) / 2
	var left, right []T

	var wg sync.WaitGroup
	wg.Add(2)
	half := func(part []T, dst *[]T) {
		defer wg.Done()
		s.fork(
			func() { *dst = parallelMergeSort(s, part, depth/2, threshold) },
			func() { *dst = MergeSort(part) },
		)
	}
	go half(a[:mid], &left)
	go half(a[mid:], &right)
	wg.Wait()

	return merge(left, right)
}
