package arena

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/agent"
	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/store"
	"github.com/lgbarn/chess-arena-go/internal/worker"
)

// Match pairs two players for one game.
type Match struct {
	White agent.Player
	Black agent.Player
}

// Result is the outcome of one match. Record is nil when Err is set.
type Result struct {
	Record *game.Record
	Err    error
}

// Runner plays matches in parallel and archives them.
type Runner struct {
	cfg   *config.Config
	store *store.Store // may be nil
}

// NewRunner creates a runner. A nil store disables archiving.
func NewRunner(cfg *config.Config, st *store.Store) *Runner {
	return &Runner{cfg: cfg, store: st}
}

// Run plays every match on cfg.Arena.Workers goroutines and returns the
// results in match order with totals over the finished games. Games are
// saved to the store in match order once all have been played. The error
// collects any store failures.
func (r *Runner) Run(ctx context.Context, matches []Match) ([]Result, *game.Summary, error) {
	play := func(ctx context.Context, item worker.WorkItem[Match]) worker.Result[*game.Record] {
		rec, err := PlayGame(ctx, r.cfg, item.Job.White, item.Job.Black)
		return worker.Result[*game.Record]{Value: rec, Err: err}
	}

	workers := r.cfg.Arena.Workers
	raw := worker.Run(ctx, matches, play,
		worker.WithWorkers(workers), worker.WithBufferSize(2*workers))

	results := make([]Result, len(raw))
	records := make([]*game.Record, 0, len(raw))
	var saveErrs *multierror.Error
	for i, res := range raw {
		results[i] = Result{Record: res.Value, Err: res.Err}
		if res.Err != nil {
			r.cfg.Logf(1, "game %d: %v\n", i+1, res.Err)
			continue
		}
		records = append(records, res.Value)
		if r.store == nil {
			continue
		}
		if _, err := r.store.SaveGame(res.Value); err != nil {
			saveErrs = multierror.Append(saveErrs, errors.Wrapf(err, "game %d", i+1))
		}
	}

	sum := game.Summarize(records)
	r.cfg.Logf(1, "%d games: white %d, black %d, draws %d\n",
		sum.Games, sum.WhiteWins, sum.BlackWins, sum.Draws)
	return results, sum, saveErrs.ErrorOrNil()
}

// SelfPlayMatches builds cfg.Arena.Games matches between seeded random
// players. Game i seeds white with Seed+2i and black with Seed+2i+1.
func SelfPlayMatches(cfg *config.Config) []Match {
	matches := make([]Match, cfg.Arena.Games)
	for i := range matches {
		seed := cfg.Arena.Seed + int64(2*i)
		matches[i] = Match{
			White: agent.NewRandomPlayer(cfg.Arena.White, seed),
			Black: agent.NewRandomPlayer(cfg.Arena.Black, seed+1),
		}
	}
	return matches
}
