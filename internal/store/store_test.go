package store

import (
	"testing"
	"time"

	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func record(white, black, winner, reason string, moves ...string) *game.Record {
	return &game.Record{
		White:     white,
		Black:     black,
		StartFEN:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Moves:     moves,
		Winner:    winner,
		Reason:    reason,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:  4 * time.Second,
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStore(t)

	rec := record("alpha", "beta", "black", game.ReasonCheckmate, "f2f3", "e7e5", "g2g4", "d8h4")
	id, err := s.SaveGame(rec)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, id, uint64(1))
	testutil.AssertEqual(t, rec.ID, id, "SaveGame should set the record ID")

	got, err := s.Game(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, rec)
}

func TestGameNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Game(42)
	testutil.AssertErrorIs(t, err, errors.ErrNotFound)
}

func TestRecentGames(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := s.SaveGame(record(name, "z", "", game.ReasonStalemate))
		testutil.AssertNoError(t, err)
	}

	recent, err := s.RecentGames(2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(recent), 2)
	testutil.AssertEqual(t, recent[0].White, "c", "newest first")
	testutil.AssertEqual(t, recent[1].White, "b")

	all, err := s.RecentGames(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(all), 3)
	testutil.AssertEqual(t, all[2].ID, uint64(1))
}

func TestStatsAndRatings(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SaveGame(record("alpha", "beta", "white", game.ReasonCheckmate, "e2e4", "e7e5"))
	testutil.AssertNoError(t, err)

	alpha, err := s.PlayerStats("alpha")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, alpha.GamesPlayed, 1)
	testutil.AssertEqual(t, alpha.Wins, 1)
	testutil.AssertEqual(t, alpha.Rating, InitialRating+16)
	testutil.AssertEqual(t, alpha.ByReason, map[string]int{game.ReasonCheckmate: 1})
	testutil.AssertEqual(t, alpha.TotalPlies, 2)
	testutil.AssertEqual(t, alpha.AverageMoveTime(), 2*time.Second)

	beta, err := s.PlayerStats("beta")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, beta.Losses, 1)
	testutil.AssertEqual(t, beta.Rating, InitialRating-16)

	// A draw moves the higher rating towards the lower.
	_, err = s.SaveGame(record("beta", "alpha", "", game.ReasonStalemate))
	testutil.AssertNoError(t, err)

	alpha, _ = s.PlayerStats("alpha")
	beta, _ = s.PlayerStats("beta")
	testutil.AssertEqual(t, alpha.Rating, InitialRating+16-DrawShift)
	testutil.AssertEqual(t, beta.Rating, InitialRating-16+DrawShift)
	testutil.AssertEqual(t, alpha.Draws, 1)
	testutil.AssertEqual(t, alpha.WinRate(), 50.0)
}

func TestAbortedGameSkipsStats(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveGame(record("alpha", "beta", "", game.ReasonAborted))
	testutil.AssertNoError(t, err)

	_, err = s.PlayerStats("alpha")
	testutil.AssertErrorIs(t, err, errors.ErrNotFound)

	games, err := s.RecentGames(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 1, "aborted game is still archived")
}

func TestSamePlayerBothSides(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveGame(record("mirror", "mirror", "white", game.ReasonCheckmate))
	testutil.AssertNoError(t, err)

	stats, err := s.PlayerStats("mirror")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesPlayed, 2, "credited once per side")
	testutil.AssertEqual(t, stats.Wins, 1)
	testutil.AssertEqual(t, stats.Losses, 1)
	testutil.AssertEqual(t, stats.Rating, InitialRating)
}

func TestLeaderboard(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveGame(record("alpha", "beta", "black", game.ReasonCheckmate))
	testutil.AssertNoError(t, err)
	_, err = s.SaveGame(record("gamma", "alpha", "white", game.ReasonCheckmate))
	testutil.AssertNoError(t, err)

	board, err := s.Leaderboard()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(board), 3)
	for i := 1; i < len(board); i++ {
		testutil.AssertTrue(t, board[i-1].Rating >= board[i].Rating, "leaderboard sorted by rating")
	}
	testutil.AssertEqual(t, board[len(board)-1].Name, "alpha")
}

func TestEloChanges(t *testing.T) {
	tests := []struct {
		winner, loser     int
		wantWin, wantLose int
	}{
		{1200, 1200, 16, -16},
		{1600, 1200, 2, -2},
		{1200, 1600, 29, -29},
	}
	for _, tt := range tests {
		w, l := EloChanges(tt.winner, tt.loser)
		if w != tt.wantWin || l != tt.wantLose {
			t.Errorf("EloChanges(%d, %d) = %d, %d; want %d, %d",
				tt.winner, tt.loser, w, l, tt.wantWin, tt.wantLose)
		}
	}
}

func TestOpenPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	testutil.AssertNoError(t, err)
	first, err := s.SaveGame(record("alpha", "beta", "", game.ReasonStalemate))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Close())

	s, err = Open(dir)
	testutil.AssertNoError(t, err)
	defer s.Close()

	got, err := s.Game(first)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.White, "alpha")

	second, err := s.SaveGame(record("alpha", "beta", "", game.ReasonStalemate))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, second > first, "IDs keep increasing across reopen")
}
