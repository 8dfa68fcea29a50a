package agent

import (
	"context"
	"math/rand"
	"sync"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/errors"
)

// Player chooses moves for one side. Implementations may be slow external
// agents and should honour ctx.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, view View) (chess.Move, error)
}

// RandomPlayer picks uniformly among the legal moves of the view.
type RandomPlayer struct {
	name string
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewRandomPlayer creates a random player with a fixed seed.
func NewRandomPlayer(name string, seed int64) *RandomPlayer {
	return &RandomPlayer{name: name, rng: rand.New(rand.NewSource(seed))}
}

// Name returns the player's name.
func (p *RandomPlayer) Name() string { return p.name }

// ChooseMove returns a random legal move.
func (p *RandomPlayer) ChooseMove(ctx context.Context, view View) (chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return chess.Move{}, err
	}
	moves := view.Moves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	p.mu.Lock()
	i := p.rng.Intn(len(moves))
	p.mu.Unlock()
	return moves[i], nil
}

// FirstMovePlayer always plays the first legal move of the view.
type FirstMovePlayer struct {
	name string
}

// NewFirstMovePlayer creates a deterministic player.
func NewFirstMovePlayer(name string) *FirstMovePlayer {
	return &FirstMovePlayer{name: name}
}

// Name returns the player's name.
func (p *FirstMovePlayer) Name() string { return p.name }

// ChooseMove returns the first legal move.
func (p *FirstMovePlayer) ChooseMove(ctx context.Context, view View) (chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return chess.Move{}, err
	}
	moves := view.Moves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	return moves[0], nil
}
