package qsort

import (
	"runtime"
	"sync"
)

// slots 동시에 도는 정렬 고루틴 수를 제한하는 채널 세마포어
type slots chan struct{}

func newSlots(n int) slots { return make(slots, max(n, 1)) }

// tryAcquire 빈 슬롯이 없으면 기다리지 않고 false
func (s slots) tryAcquire() bool {
	select {
	case s <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s slots) release() { <-s }

// fork 슬롯을 얻으면 par를, 못 얻으면 seq를 호출한 고루틴에서 실행
func (s slots) fork(par, seq func()) {
	if !s.tryAcquire() {
		seq()
		return
	}
	defer s.release()
	par()
}

// 병렬 정렬들이 함께 쓰는 프로세스 전역 슬롯. CPU 수만큼.
var (
	sortSlots     slots
	sortSlotsOnce sync.Once
)

func sharedSlots() slots {
	sortSlotsOnce.Do(func() { sortSlots = newSlots(runtime.NumCPU()) })
	return sortSlots
}

// PoolStatus 사용 중인 슬롯 수와 전체 용량. 병렬 정렬을 한 번도 안 돌렸으면 0, 0.
func PoolStatus() (used int, capacity int) {
	if sortSlots == nil {
		return 0, 0
	}
	return len(sortSlots), cap(sortSlots)
}
