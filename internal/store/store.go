// Package store archives finished games and per-player statistics in
// BadgerDB.
package store

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// Key layout.
const (
	prefixGame  = "game/"
	prefixStats = "stats/"
	keyGameSeq  = "seq/game"
)

// Conflicting stats updates from concurrent saves are retried this many
// times before giving up.
const maxConflictRetries = 5

// Store wraps a BadgerDB database.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	seq, err := db.GetSequence([]byte(keyGameSeq), 16)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "open game sequence")
	}
	return &Store{db: db, seq: seq}, nil
}

// Close releases the game sequence and closes the database.
func (s *Store) Close() error {
	var result *multierror.Error
	if s.seq != nil {
		if err := s.seq.Release(); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "release game sequence"))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "close store"))
		}
	}
	return result.ErrorOrNil()
}

func gameKey(id uint64) []byte {
	key := make([]byte, len(prefixGame)+8)
	copy(key, prefixGame)
	binary.BigEndian.PutUint64(key[len(prefixGame):], id)
	return key
}

func statsKey(name string) []byte {
	return []byte(prefixStats + name)
}

// SaveGame assigns the record an ID, stores it and updates both players'
// statistics in the same transaction. Aborted games are stored but do not
// count towards statistics.
func (s *Store) SaveGame(rec *game.Record) (uint64, error) {
	next, err := s.seq.Next()
	if err != nil {
		return 0, errors.Wrap(err, "next game id")
	}
	id := next + 1
	rec.ID = id

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, errors.Wrap(err, "encode game")
	}

	for attempt := 0; ; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			if err := txn.Set(gameKey(id), data); err != nil {
				return err
			}
			if rec.Reason == game.ReasonAborted {
				return nil
			}
			return updateStats(txn, rec)
		})
		if err != badger.ErrConflict || attempt >= maxConflictRetries {
			break
		}
	}
	if err != nil {
		return 0, errors.Wrapf(err, "save game %d", id)
	}
	return id, nil
}

// Game returns the stored game with the given ID.
func (s *Store) Game(id uint64) (*game.Record, error) {
	var rec game.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(errors.ErrNotFound, "game %d", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load game %d", id)
	}
	return &rec, nil
}

// RecentGames returns up to limit games, newest first. A limit of zero or
// less returns every game.
func (s *Store) RecentGames(limit int) ([]*game.Record, error) {
	var games []*game.Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the largest possible game key.
		seek := append([]byte(prefixGame), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && len(games) >= limit {
				break
			}
			var rec game.Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			games = append(games, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return games, nil
}
