// Package bloom 캐시 조회 앞단에 두는 기본 블룸 필터.
// Contains가 false면 확실히 없는 키, true면 있을 수도 있는 키.
package bloom

import (
	"crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
)

// Filter 비트 배열 + 시드 붙은 FNV 이중 해싱
type Filter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	seed     [8]byte
}

// New 예상 아이템 수와 목표 오탐률로 크기와 해시 수를 정한다
func New(expectedItems uint64, falsePositiveRate float64) *Filter {
	expectedItems = max(expectedItems, 1)
	size := max(uint64(-float64(expectedItems)*math.Log(falsePositiveRate)/(math.Log(2)*math.Log(2))), 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Log(2)), 1), 15)

	f := &Filter{
		bitArray: make([]uint64, (size+63)/64),
		size:     size,
		numHash:  numHash,
	}
	rand.Read(f.seed[:])
	return f
}

func (f *Filter) positions(data []byte, fn func(word, bit uint64) bool) {
	h := fnv.New64a()
	h.Write(data)
	h.Write(f.seed[:])
	hash1 := h.Sum64()

	for i := uint(0); i < f.numHash; i++ {
		hash2 := hash1>>17 ^ hash1<<47 ^ uint64(i)*0x9e3779b97f4a7c15
		if hash2%2 == 0 {
			hash2++
		}
		pos := (hash1 + uint64(i)*hash2) % f.size
		if !fn(pos/64, pos%64) {
			return
		}
	}
}

// Add 아이템 추가
func (f *Filter) Add(data []byte) {
	f.positions(data, func(word, bit uint64) bool {
		f.bitArray[word] |= 1 << bit
		return true
	})
	f.numItems++
}

// Contains 아이템이 있을 수 있는지
func (f *Filter) Contains(data []byte) bool {
	found := true
	f.positions(data, func(word, bit uint64) bool {
		if f.bitArray[word]&(1<<bit) == 0 {
			found = false
		}
		return found
	})
	return found
}

// AddUint64 정수 키 추가 (빅엔디안 8바이트)
func (f *Filter) AddUint64(n uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	f.Add(b[:])
}

// ContainsUint64 정수 키 조회
func (f *Filter) ContainsUint64(n uint64) bool {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return f.Contains(b[:])
}

// Stats 켜진 비트 수, 채움 비율, 추정 오탐률
func (f *Filter) Stats() (setBits uint64, fillRatio float64, estimatedFPR float64) {
	for _, word := range f.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}
	fillRatio = float64(setBits) / float64(f.size)
	return setBits, fillRatio, math.Pow(fillRatio, float64(f.numHash))
}

// Items 추가된 아이템 수
func (f *Filter) Items() uint64 { return f.numItems }
