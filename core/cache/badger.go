package cache

import (
	"time"

	"praxis/core/logger"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStore is a persistent Store backed by badger. Entry expiry uses
// badger's native TTL support.
type BadgerStore struct {
	db     *badger.DB
	logger logger.Logger
}

// NewBadgerStore opens (or creates) a badger database at path.
func NewBadgerStore(path string, log logger.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerStore{db: db, logger: log}, nil
}

func (s *BadgerStore) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			s.logger.Warn("cache read failed, treating as miss",
				logger.String("key", key),
				logger.String("error", err.Error()))
		}
		return nil, false
	}
	return value, true
}

func (s *BadgerStore) Set(key string, value []byte, ttl time.Duration) {
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		s.logger.Warn("cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()))
	}
}

func (s *BadgerStore) Delete(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		s.logger.Warn("cache delete failed",
			logger.String("key", key),
			logger.String("error", err.Error()))
	}
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
