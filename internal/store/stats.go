package store

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// Rating constants.
const (
	InitialRating = 1200
	KFactor       = 32
	// DrawShift moves the higher-rated player towards the lower on a draw.
	DrawShift = 8
)

// Stats are one player's accumulated results.
type Stats struct {
	Name          string         `json:"name"`
	GamesPlayed   int            `json:"games_played"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Draws         int            `json:"draws"`
	Rating        int            `json:"rating"`
	ByReason      map[string]int `json:"by_reason"`
	TotalPlies    int            `json:"total_plies"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LastPlayed    time.Time      `json:"last_played"`
}

// NewStats returns empty statistics for a player.
func NewStats(name string) *Stats {
	return &Stats{
		Name:     name,
		Rating:   InitialRating,
		ByReason: make(map[string]int),
	}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// AverageMoveTime returns the mean wall time per ply over all games.
func (s *Stats) AverageMoveTime() time.Duration {
	if s.TotalPlies == 0 {
		return 0
	}
	return s.TotalPlayTime / time.Duration(s.TotalPlies)
}

func (s *Stats) record(rec *game.Record, won, drew bool) {
	s.GamesPlayed++
	switch {
	case won:
		s.Wins++
	case drew:
		s.Draws++
	default:
		s.Losses++
	}
	s.ByReason[rec.Reason]++
	s.TotalPlies += rec.Plies()
	s.TotalPlayTime += rec.Duration
	s.LastPlayed = rec.StartedAt.Add(rec.Duration)
}

// EloChanges returns the rating changes for the winner and the loser.
func EloChanges(winnerRating, loserRating int) (winnerDelta, loserDelta int) {
	expectedWinner := 1 / (1 + math.Pow(10, float64(loserRating-winnerRating)/400))
	expectedLoser := 1 / (1 + math.Pow(10, float64(winnerRating-loserRating)/400))
	return int(KFactor * (1 - expectedWinner)), int(KFactor * (0 - expectedLoser))
}

// applyRatings updates both ratings for the result of one game.
func applyRatings(white, black *Stats, winner string) {
	switch winner {
	case "white":
		w, b := EloChanges(white.Rating, black.Rating)
		white.Rating += w
		black.Rating += b
	case "black":
		b, w := EloChanges(black.Rating, white.Rating)
		black.Rating += b
		white.Rating += w
	default:
		switch {
		case white.Rating > black.Rating:
			white.Rating -= DrawShift
			black.Rating += DrawShift
		case black.Rating > white.Rating:
			black.Rating -= DrawShift
			white.Rating += DrawShift
		}
	}
}

func loadStats(txn *badger.Txn, name string) (*Stats, error) {
	item, err := txn.Get(statsKey(name))
	if err == badger.ErrKeyNotFound {
		return NewStats(name), nil
	}
	if err != nil {
		return nil, err
	}
	stats := NewStats(name)
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	if stats.ByReason == nil {
		stats.ByReason = make(map[string]int)
	}
	return stats, err
}

func saveStats(txn *badger.Txn, stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return txn.Set(statsKey(stats.Name), data)
}

func updateStats(txn *badger.Txn, rec *game.Record) error {
	white, err := loadStats(txn, rec.White)
	if err != nil {
		return err
	}
	black := white
	if rec.Black != rec.White {
		if black, err = loadStats(txn, rec.Black); err != nil {
			return err
		}
	}

	if white != black {
		applyRatings(white, black, rec.Winner)
	}
	white.record(rec, rec.Winner == "white", rec.IsDraw())
	black.record(rec, rec.Winner == "black", rec.IsDraw())

	if err := saveStats(txn, white); err != nil {
		return err
	}
	if black != white {
		return saveStats(txn, black)
	}
	return nil
}

// PlayerStats returns the statistics for a player.
func (s *Store) PlayerStats(name string) (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(statsKey(name))
		if err != nil {
			return err
		}
		stats, err = loadStats(txn, name)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(errors.ErrNotFound, "player %q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load stats for %q", name)
	}
	return stats, nil
}

// Leaderboard returns every player's statistics, highest rating first.
func (s *Store) Leaderboard() ([]*Stats, error) {
	var all []*Stats
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixStats)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			name := strings.TrimPrefix(string(it.Item().Key()), prefixStats)
			stats := NewStats(name)
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, stats)
			})
			if err != nil {
				return err
			}
			all = append(all, stats)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list stats")
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Rating != all[j].Rating {
			return all[i].Rating > all[j].Rating
		}
		return all[i].Name < all[j].Name
	})
	return all, nil
}
