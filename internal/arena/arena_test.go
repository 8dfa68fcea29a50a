package arena

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-arena-go/internal/agent"
	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/store"
	"github.com/lgbarn/chess-arena-go/internal/testutil"
)

// scripted plays a fixed list of moves and then the first legal move.
type scripted struct {
	name  string
	moves []string
	next  int
}

func (p *scripted) Name() string { return p.name }

func (p *scripted) ChooseMove(_ context.Context, view agent.View) (chess.Move, error) {
	if p.next < len(p.moves) {
		p.next++
		return chess.ParseMove(p.moves[p.next-1])
	}
	return view.Moves()[0], nil
}

// failing always returns an error.
type failing struct{}

func (failing) Name() string { return "failing" }

func (failing) ChooseMove(context.Context, agent.View) (chess.Move, error) {
	return chess.Move{}, fmt.Errorf("no answer")
}

func testConfig(fen string, maxPlies int) (*config.Config, *bytes.Buffer) {
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithStartFEN(fen).
		WithMaxPlies(maxPlies).
		WithLog(log).
		WithVerbosity(2).
		Build()
	return cfg, log
}

// replay checks that the record's moves are legal from its start position
// and lead to its final position.
func replay(t *testing.T, rec *game.Record) {
	t.Helper()
	s, err := game.FromFEN(rec.StartFEN)
	testutil.AssertNoError(t, err)
	for _, text := range rec.Moves {
		_, err := s.ApplyMove(testutil.MustMove(t, text))
		testutil.AssertNoError(t, err, "replaying %s", text)
	}
	testutil.AssertEqual(t, s.FEN(), rec.FinalFEN)
}

func TestPlayGameCheckmate(t *testing.T) {
	cfg, log := testConfig("", 100)
	white := &scripted{name: "w", moves: []string{"f2f3", "g2g4"}}
	black := &scripted{name: "b", moves: []string{"e7e5", "d8h4"}}

	rec, err := PlayGame(context.Background(), cfg, white, black)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, rec.Winner, "black")
	testutil.AssertEqual(t, rec.Reason, game.ReasonCheckmate)
	testutil.AssertEqual(t, rec.Result(), "0-1")
	testutil.AssertEqual(t, rec.White, "w")
	testutil.AssertContains(t, log.String(), "w vs b: 0-1, checkmate after 4 plies")
	replay(t, rec)
}

func TestPlayGameEndReasons(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		maxPlies   int
		wantReason string
		wantPlies  int
	}{
		{"stalemate at start", testutil.StalemateFEN, 10, game.ReasonStalemate, 0},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 10, game.ReasonInsufficient, 0},
		{"ply limit", "", 4, game.ReasonMaxPlies, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := testConfig(tt.fen, tt.maxPlies)
			rec, err := PlayGame(context.Background(), cfg,
				agent.NewFirstMovePlayer("a"), agent.NewFirstMovePlayer("b"))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rec.Reason, tt.wantReason)
			testutil.AssertEqual(t, rec.Plies(), tt.wantPlies)
			testutil.AssertTrue(t, rec.IsDraw(), "expected a draw")
		})
	}
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg, _ := testConfig("", 100)
	rec, err := PlayGame(ctx, cfg, agent.NewRandomPlayer("a", 1), agent.NewRandomPlayer("b", 2))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Reason, game.ReasonAborted)
	testutil.AssertEqual(t, rec.Plies(), 0)
	testutil.AssertEqual(t, rec.Result(), "*")
}

func TestPlayGameBadStart(t *testing.T) {
	cfg, _ := testConfig("not a fen", 10)
	_, err := PlayGame(context.Background(), cfg, agent.NewFirstMovePlayer("a"), agent.NewFirstMovePlayer("b"))
	testutil.AssertError(t, err)
}

func TestPlayGameSubstitutesFailingPlayer(t *testing.T) {
	cfg, log := testConfig("", 2)
	rec, err := PlayGame(context.Background(), cfg, failing{}, agent.NewFirstMovePlayer("b"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Plies(), 2)
	testutil.AssertContains(t, log.String(), "failing failed: no answer")
	replay(t, rec)
}

func TestRandomGamesAreLegalAndReproducible(t *testing.T) {
	cfg, _ := testConfig("", 200)
	cfg.Verbosity = 0

	for seed := int64(1); seed <= 5; seed++ {
		first, err := PlayGame(context.Background(), cfg,
			agent.NewRandomPlayer("a", seed), agent.NewRandomPlayer("b", seed+100))
		testutil.AssertNoError(t, err)
		replay(t, first)

		second, err := PlayGame(context.Background(), cfg,
			agent.NewRandomPlayer("a", seed), agent.NewRandomPlayer("b", seed+100))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, second.Moves, first.Moves, "seed %d", seed)
	}
}

func TestRunnerRun(t *testing.T) {
	st, err := store.OpenInMemory()
	testutil.AssertNoError(t, err)
	defer st.Close()

	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithSelfPlay(6, 3).
		WithMaxPlies(40).
		WithSeed(7).
		WithLog(log).
		WithVerbosity(1).
		Build()

	results, sum, err := NewRunner(cfg, st).Run(context.Background(), SelfPlayMatches(cfg))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 6)
	testutil.AssertEqual(t, sum.Games, 6)
	testutil.AssertEqual(t, sum.WhiteWins+sum.BlackWins+sum.Draws, 6)

	for i, res := range results {
		testutil.AssertNoError(t, res.Err)
		testutil.AssertEqual(t, res.Record.ID, uint64(i+1), "saved in match order")
		testutil.AssertEqual(t, res.Record.White, "random-white")
	}

	stored, err := st.RecentGames(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(stored), 6)

	stats, err := st.PlayerStats("random-white")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesPlayed, 6)

	testutil.AssertContains(t, log.String(), "6 games:")
}

func TestRunnerWithoutStore(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(2, 2).WithMaxPlies(10).WithVerbosity(0).Build()
	results, sum, err := NewRunner(cfg, nil).Run(context.Background(), SelfPlayMatches(cfg))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sum.Games, 2)
	testutil.AssertEqual(t, results[0].Record.ID, uint64(0), "unsaved records have no ID")
}

func TestSelfPlayMatchesSeeds(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(3, 1).WithMaxPlies(30).WithVerbosity(0).Build()

	a, _, err := NewRunner(cfg, nil).Run(context.Background(), SelfPlayMatches(cfg))
	testutil.AssertNoError(t, err)
	b, _, err := NewRunner(cfg, nil).Run(context.Background(), SelfPlayMatches(cfg))
	testutil.AssertNoError(t, err)

	for i := range a {
		testutil.AssertEqual(t, a[i].Record.Moves, b[i].Record.Moves, "game %d", i)
	}
}

func TestSelfPlayMatchesSeedLayout(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(3, 1).WithSeed(10).Build()
	matches := SelfPlayMatches(cfg)
	view := agent.BuildView(game.NewGame())

	for i, m := range matches {
		wantWhite, err := agent.NewRandomPlayer("w", 10+int64(2*i)).ChooseMove(context.Background(), view)
		testutil.AssertNoError(t, err)
		wantBlack, err := agent.NewRandomPlayer("b", 10+int64(2*i)+1).ChooseMove(context.Background(), view)
		testutil.AssertNoError(t, err)

		gotWhite, err := m.White.ChooseMove(context.Background(), view)
		testutil.AssertNoError(t, err)
		gotBlack, err := m.Black.ChooseMove(context.Background(), view)
		testutil.AssertNoError(t, err)

		testutil.AssertEqual(t, gotWhite, wantWhite, "white seed of game %d", i)
		testutil.AssertEqual(t, gotBlack, wantBlack, "black seed of game %d", i)
	}
}
