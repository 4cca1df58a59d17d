// Package store 벤치마크 결과와 삼조 개수 테이블을 저장하는 KV 저장소 추상화.
// bbolt, BadgerDB, PebbleDB 세 가지 백엔드를 같은 인터페이스로 다룬다.
package store

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound 키가 없음
	ErrNotFound = errors.New("key not found")
	// ErrUnknownBackend 지원하지 않는 백엔드 이름
	ErrUnknownBackend = errors.New("unknown store backend")
)

// 백엔드 이름
const (
	Bolt   = "bbolt"
	Badger = "badger"
	Pebble = "pebble"
)

// Backends 지원 백엔드 목록 (출력 순서)
var Backends = []string{Bolt, Badger, Pebble}

// KV 일괄 쓰기용 키/값 쌍
type KV struct {
	Key   []byte
	Value []byte
}

// Store 키 순서대로 순회 가능한 KV 저장소.
// Get과 Scan이 넘겨주는 값은 호출자가 보관해도 되는 복사본이다.
type Store interface {
	Name() string
	Put(key, value []byte) error
	PutBatch(kvs []KV) error
	Get(key []byte) ([]byte, error)
	// Scan from 이상의 키를 오름차순으로 최대 limit개 (limit <= 0 이면 전부) 방문한다.
	Scan(from []byte, limit int, fn func(key, value []byte) error) error
	Close() error
}

// Open 이름으로 백엔드를 골라 연다. bbolt는 path를 파일로, 나머지는 디렉터리로 쓴다.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case Bolt:
		return OpenBolt(path)
	case Badger:
		return OpenBadger(path)
	case Pebble:
		return OpenPebble(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

// Uint64Key 빅엔디안 8바이트 키. 바이트 순서가 수의 순서와 같다.
func Uint64Key(n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return b[:]
}

// DecodeUint64 Uint64Key의 역
func DecodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errors.Newf("uint64 value has %d bytes", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// Key 구성 요소를 '/'로 이은 문자열 키
func Key(parts ...string) []byte {
	return []byte(strings.Join(parts, "/"))
}

// PutJSON v를 JSON으로 저장
func PutJSON(s Store, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode value")
	}
	return s.Put(key, data)
}

// GetJSON 저장된 JSON을 v로 디코드
func GetJSON(s Store, key []byte, v any) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(data, v), "decode value")
}

// DiskSize path 아래 파일 크기 합 (파일이면 그 크기)
func DiskSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, errors.Wrapf(err, "walk %s", path)
}
