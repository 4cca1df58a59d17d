package store

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

// OpenPebble 디렉터리 기반 PebbleDB 저장소. 쓰기는 NoSync.
func OpenPebble(dir string) (Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Name() string { return Pebble }

func (s *pebbleStore) Put(key, value []byte) error {
	return errors.Wrap(s.db.Set(key, value, pebble.NoSync), "pebble put")
}

func (s *pebbleStore) PutBatch(kvs []KV) error {
	batch := s.db.NewBatch()
	defer batch.Close()
	for _, kv := range kvs {
		if err := batch.Set(kv.Key, kv.Value, nil); err != nil {
			return errors.Wrap(err, "pebble batch set")
		}
	}
	return errors.Wrap(batch.Commit(pebble.NoSync), "pebble batch commit")
}

func (s *pebbleStore) Get(key []byte) ([]byte, error) {
	val, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "pebble get")
	}
	defer closer.Close()
	// closer를 닫으면 val이 무효가 되므로 복사
	return bytes.Clone(val), nil
}

func (s *pebbleStore) Scan(from []byte, limit int, fn func(key, value []byte) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return errors.Wrap(err, "pebble iter")
	}

	count := 0
	for it.SeekGE(from); it.Valid(); it.Next() {
		if limit > 0 && count >= limit {
			break
		}
		if err := fn(bytes.Clone(it.Key()), bytes.Clone(it.Value())); err != nil {
			it.Close()
			return err
		}
		count++
	}
	return it.Close()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
