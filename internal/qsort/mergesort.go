package qsort

import "golang.org/x/exp/constraints"

// MergeSort 비교용 안정 정렬. 입력은 건드리지 않고 새 슬라이스를 돌려준다.
func MergeSort[T constraints.Ordered](a []T) []T {
	if len(a) <= 16 {
		// 작은 배열은 삽입정렬 사용
		out := make([]T, len(a))
		copy(out, a)
		insertionSort(out)
		return out
	}

	mid := len(a) / 2
	return merge(MergeSort(a[:mid]), MergeSort(a[mid:]))
}

func merge[T constraints.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}

	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

func insertionSort[T constraints.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
