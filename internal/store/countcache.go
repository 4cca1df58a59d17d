package store

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/S_A_Exercises/internal/bloom"
)

// CacheStats 조회 통계
type CacheStats struct {
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
	Filtered uint64 `json:"filtered"` // 블룸 필터가 저장소 조회 없이 걸러낸 수
}

// FilterStats 블룸 필터 상태
type FilterStats struct {
	Items        uint64  `json:"items"`
	SetBits      uint64  `json:"set_bits"`
	FillRatio    float64 `json:"fill_ratio"`
	EstimatedFPR float64 `json:"estimated_fpr"`
}

// countPrefix 개수 레코드 키의 접두사. 같은 저장소의 다른 레코드와 섞이지 않는다.
var countPrefix = []byte("count/")

// errScanDone Scan을 중간에 멈추는 내부 신호
var errScanDone = errors.New("scan done")

// CountKey 상한 n의 개수 레코드 키: "count/" + 빅엔디언 8바이트
func CountKey(n uint64) []byte {
	return append(bytes.Clone(countPrefix), Uint64Key(n)...)
}

// CountCache 상한 N -> 삼조 개수 테이블.
// 블룸 필터가 "확실히 없음"을 답하면 저장소를 건드리지 않는다.
type CountCache struct {
	store  Store
	filter *bloom.Filter
	stats  CacheStats
}

// NewCountCache 저장소 s 위의 캐시. expected는 블룸 필터 크기 산정용.
func NewCountCache(s Store, expected uint64) *CountCache {
	return &CountCache{store: s, filter: bloom.New(expected, 0.01)}
}

// Warm 저장소에 이미 있는 개수 레코드로 블룸 필터를 다시 채운다.
// "count/" 접두사 구간만 훑고, 그 밖의 키는 8바이트여도 세지 않는다.
func (c *CountCache) Warm() (int, error) {
	loaded := 0
	err := c.store.Scan(countPrefix, 0, func(k, _ []byte) error {
		if !bytes.HasPrefix(k, countPrefix) {
			return errScanDone
		}
		n, err := DecodeUint64(k[len(countPrefix):])
		if err != nil {
			return nil
		}
		c.filter.AddUint64(n)
		loaded++
		return nil
	})
	if errors.Is(err, errScanDone) {
		err = nil
	}
	return loaded, errors.Wrap(err, "warm count cache")
}

// Lookup 저장된 개수. 음수 상한은 캐시하지 않는다.
func (c *CountCache) Lookup(n int) (int, bool, error) {
	if n < 0 {
		return 0, false, nil
	}
	if !c.filter.ContainsUint64(uint64(n)) {
		c.stats.Filtered++
		c.stats.Misses++
		return 0, false, nil
	}

	v, err := c.store.Get(CountKey(uint64(n)))
	if errors.Is(err, ErrNotFound) {
		c.stats.Misses++
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "lookup %d", n)
	}
	count, err := DecodeUint64(v)
	if err != nil {
		return 0, false, errors.Wrapf(err, "decode count for %d", n)
	}
	c.stats.Hits++
	return int(count), true, nil
}

// Remember n의 개수를 저장
func (c *CountCache) Remember(n, count int) error {
	if n < 0 {
		return nil
	}
	if err := c.store.Put(CountKey(uint64(n)), Uint64Key(uint64(count))); err != nil {
		return errors.Wrapf(err, "remember %d", n)
	}
	c.filter.AddUint64(uint64(n))
	return nil
}

// Resolve 캐시에 있으면 그 값, 없으면 compute 결과를 저장 후 반환
func (c *CountCache) Resolve(n int, compute func(int) int) (int, error) {
	if count, ok, err := c.Lookup(n); err != nil || ok {
		return count, err
	}
	count := compute(n)
	return count, c.Remember(n, count)
}

// Stats 누적 통계
func (c *CountCache) Stats() CacheStats { return c.stats }

// FilterStats 블룸 필터에 든 항목 수와 채움 비율, 추정 오탐률
func (c *CountCache) FilterStats() FilterStats {
	setBits, fill, fpr := c.filter.Stats()
	return FilterStats{Items: c.filter.Items(), SetBits: setBits, FillRatio: fill, EstimatedFPR: fpr}
}
