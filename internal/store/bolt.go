package store

import (
	"bytes"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var boltBucket = []byte("exercises")

type boltStore struct {
	db *bbolt.DB
}

// OpenBolt 단일 버킷을 쓰는 bbolt 파일 저장소
func OpenBolt(path string) (Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Name() string { return Bolt }

func (s *boltStore) Put(key, value []byte) error {
	return errors.Wrap(s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put(key, value)
	}), "bbolt put")
}

func (s *boltStore) PutBatch(kvs []KV) error {
	return errors.Wrap(s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(boltBucket)
		for _, kv := range kvs {
			if err := b.Put(kv.Key, kv.Value); err != nil {
				return err
			}
		}
		return nil
	}), "bbolt batch")
}

func (s *boltStore) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		// 값은 트랜잭션 안에서만 유효하므로 복사
		v := tx.Bucket(boltBucket).Get(key)
		if v == nil {
			return ErrNotFound
		}
		out = bytes.Clone(v)
		return nil
	})
	return out, err
}

func (s *boltStore) Scan(from []byte, limit int, fn func(key, value []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(boltBucket).Cursor()
		count := 0
		// bbolt는 Next()가 마지막에서 nil을 돌려주므로 끝 검사가 따로 필요 없음
		for k, v := c.Seek(from); k != nil; k, v = c.Next() {
			if limit > 0 && count >= limit {
				break
			}
			if err := fn(bytes.Clone(k), bytes.Clone(v)); err != nil {
				return err
			}
			count++
		}
		return nil
	})
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
