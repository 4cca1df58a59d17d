package store

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
)

type badgerStore struct {
	db *badger.DB
}

// OpenBadger 디렉터리 기반 BadgerDB 저장소 (내부 로거는 끔)
func OpenBadger(dir string) (Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Name() string { return Badger }

func (s *badgerStore) Put(key, value []byte) error {
	return errors.Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	}), "badger put")
}

func (s *badgerStore) PutBatch(kvs []KV) error {
	wb := s.db.NewWriteBatch()
	for _, kv := range kvs {
		if err := wb.Set(kv.Key, kv.Value); err != nil {
			wb.Cancel()
			return errors.Wrap(err, "badger batch set")
		}
	}
	return errors.Wrap(wb.Flush(), "badger batch flush")
}

func (s *badgerStore) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	return out, err
}

func (s *badgerStore) Scan(from []byte, limit int, fn func(key, value []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		count := 0
		for it.Seek(from); it.Valid(); it.Next() {
			if limit > 0 && count >= limit {
				break
			}
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(item.KeyCopy(nil), v); err != nil {
				return err
			}
			count++
		}
		return nil
	})
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
