// Package qsort 첫 원소를 피벗으로 쓰는 교과서식 제자리 퀵소트.
//
// 안정 정렬이 아니며, 이미 정렬된 입력에서는 재귀 깊이가 O(n)까지 간다.
package qsort

import "golang.org/x/exp/constraints"

// Swap 두 인덱스의 원소를 교환
func Swap[T any](a []T, left, right int) {
	a[left], a[right] = a[right], a[left]
}

// Partition a[low]를 피벗으로 a[low..high]를 나누고 피벗의 최종 위치를 돌려준다.
// 호출 전 low <= high 이어야 한다.
func Partition[T constraints.Ordered](a []T, low, high int) int {
	pivotItem := a[low]
	left, right := low, high

	for left < right {
		// left는 high를 넘지 않도록 묶어 둔다. 범위 안에서 멈추는 입력이면 결과는 같다.
		for left <= high && a[left] <= pivotItem {
			left++
		}
		// a[low] == pivotItem 이므로 right는 low 아래로 내려가지 않는다
		for a[right] > pivotItem {
			right--
		}
		if left < right {
			Swap(a, left, right)
		}
	}

	// right가 피벗의 최종 위치
	a[low] = a[right]
	a[right] = pivotItem
	return right
}

// QuickSort a[low..high]를 오름차순으로 정렬. high <= low 이면 아무 것도 하지 않는다.
func QuickSort[T constraints.Ordered](a []T, low, high int) {
	if high > low {
		p := Partition(a, low, high)
		QuickSort(a, low, p-1)
		QuickSort(a, p+1, high)
	}
}

// Sort 슬라이스 전체 정렬
func Sort[T constraints.Ordered](a []T) {
	QuickSort(a, 0, len(a)-1)
}

// IsSorted 오름차순 여부
func IsSorted[T constraints.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}
