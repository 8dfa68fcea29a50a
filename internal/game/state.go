// Package game holds the state of a single chess game and applies moves to
// it, enforcing turn order and legality.
package game

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/engine"
	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/repetition"
)

// Outcome is the result of a game as far as the rules decide it.
type Outcome struct {
	Status engine.Status
	// Winner is meaningful only when Status is Checkmate.
	Winner chess.Colour
}

// Over reports whether the game has reached checkmate or stalemate.
func (o Outcome) Over() bool {
	return o.Status != engine.Ongoing
}

// String returns a short human description, e.g. "checkmate, white wins".
func (o Outcome) String() string {
	switch o.Status {
	case engine.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", o.Winner)
	case engine.Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// MoveResult describes the effect of an applied move.
type MoveResult struct {
	Captured  chess.Kind // NoKind if nothing was captured
	Promoted  chess.Kind // NoKind unless a pawn promoted
	Castled   bool
	InCheck   bool // the side now to move is in check
	Checkmate bool
	Stalemate bool
}

// State is one game: the board, whose turn it is, castling rights and the
// record of what has been played.
type State struct {
	Board    *chess.Board
	Turn     chess.Colour
	Castling chess.CastlingRights

	// MoveCount is the number of half-moves applied to this state.
	MoveCount int
	LastMove  *chess.Move
	Moves     []chess.Move
	History   *repetition.History

	// Active is true for games started with NewGame or FromFEN and false
	// after ResetGame or once the game has ended.
	Active    bool
	StartedAt time.Time
	Outcome   Outcome

	// InCheck is true when the side to move is in check.
	InCheck bool

	// Clocks for FEN output.
	HalfmoveClock int
	FullMove      int
}

// NewGame creates an active game at the starting position with the history
// seeded by that position.
func NewGame() *State {
	board := chess.NewInitialBoard()
	return &State{
		Board:     board,
		Turn:      chess.White,
		Castling:  chess.AllCastlingRights(),
		History:   repetition.NewHistory(board.Canonical()),
		Active:    true,
		StartedAt: time.Now(),
		FullMove:  1,
	}
}

// ResetGame creates an inactive game at the starting position with an empty
// history. Moves may still be applied to it.
func ResetGame() *State {
	return &State{
		Board:    chess.NewInitialBoard(),
		Turn:     chess.White,
		Castling: chess.AllCastlingRights(),
		History:  repetition.NewHistory(),
		FullMove: 1,
	}
}

// FromFEN creates an active game from a FEN position. A position that is
// already checkmate or stalemate yields a finished, inactive game.
func FromFEN(fen string) (*State, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	s := &State{
		Board:         pos.Board,
		Turn:          pos.ToMove,
		Castling:      pos.Castling,
		History:       repetition.NewHistory(pos.Board.Canonical()),
		Active:        true,
		StartedAt:     time.Now(),
		HalfmoveClock: pos.HalfmoveClock,
		FullMove:      pos.MoveNumber,
	}
	s.evaluate(s.Turn.Opposite())
	return s, nil
}

// FEN returns the position in Forsyth-Edwards Notation.
func (s *State) FEN() string {
	return engine.ToFEN(&engine.Position{
		Board:         s.Board,
		ToMove:        s.Turn,
		Castling:      s.Castling,
		HalfmoveClock: s.HalfmoveClock,
		MoveNumber:    s.FullMove,
	})
}

// LegalMovesForSquare returns the legal destinations of the piece on sq. It
// is empty when the square is off the board, empty, or holds a piece of the
// side not to move.
func (s *State) LegalMovesForSquare(sq chess.Square) []chess.Square {
	if !sq.Valid() {
		return nil
	}
	piece := s.Board.Get(sq)
	if piece.IsEmpty() || piece.Colour != s.Turn {
		return nil
	}
	return engine.LegalMoves(s.Board, s.Castling, sq)
}

// LegalMovesForSide returns every legal move of the colour.
func (s *State) LegalMovesForSide(colour chess.Colour) []chess.Move {
	return engine.LegalMovesForSide(s.Board, s.Castling, colour)
}

// ApplyMove validates and applies a move for the side to move. On error the
// state is unchanged and the error is a *errors.MoveError wrapping one of
// ErrOutOfBounds, ErrGameOver, ErrNoPiece, ErrWrongTurn, ErrIllegalMove or
// ErrKingExposed. The promotion kind defaults to queen when absent or not
// one of knight, bishop, rook or queen.
func (s *State) ApplyMove(move chess.Move) (MoveResult, error) {
	if err := s.validate(move); err != nil {
		return MoveResult{}, &errors.MoveError{
			Err:    err,
			Ply:    s.MoveCount + 1,
			Colour: s.Turn.String(),
			Move:   move.String(),
		}
	}

	mover := s.Turn
	u := engine.MakeMove(s.Board, &s.Castling, move)

	applied := move
	applied.Promotion = u.Promoted
	s.MoveCount++
	s.LastMove = &applied
	s.Moves = append(s.Moves, applied)
	s.History.Append(s.Board.Canonical())

	if u.Moved.Kind == chess.Pawn || !u.Captured.IsEmpty() {
		s.HalfmoveClock = 0
	} else {
		s.HalfmoveClock++
	}
	if mover == chess.Black {
		s.FullMove++
	}
	s.Turn = mover.Opposite()

	s.evaluate(mover)

	return MoveResult{
		Captured:  u.Captured.Kind,
		Promoted:  u.Promoted,
		Castled:   u.Castled,
		InCheck:   s.InCheck,
		Checkmate: s.Outcome.Status == engine.Checkmate,
		Stalemate: s.Outcome.Status == engine.Stalemate,
	}, nil
}

// validate checks a move against the current state without modifying it.
func (s *State) validate(move chess.Move) error {
	if !move.From.Valid() || !move.To.Valid() {
		return errors.ErrOutOfBounds
	}
	if s.Outcome.Over() {
		return errors.ErrGameOver
	}
	piece := s.Board.Get(move.From)
	if piece.IsEmpty() {
		return errors.ErrNoPiece
	}
	if piece.Colour != s.Turn {
		return errors.ErrWrongTurn
	}
	return engine.CheckMove(s.Board, s.Castling, move)
}

// evaluate runs the status evaluation once for the side to move. lastMover
// is credited with the win on checkmate.
func (s *State) evaluate(lastMover chess.Colour) {
	eval := engine.Evaluate(s.Board, s.Castling, s.Turn)
	s.InCheck = eval.InCheck
	s.Outcome = Outcome{Status: eval.Status}
	if eval.Status == engine.Checkmate {
		s.Outcome.Winner = lastMover
	}
	if s.Outcome.Over() {
		s.Active = false
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Board = s.Board.Copy()
	c.Moves = append([]chess.Move(nil), s.Moves...)
	c.History = s.History.Clone()
	if s.LastMove != nil {
		last := *s.LastMove
		c.LastMove = &last
	}
	return &c
}

// Elapsed returns the time since the game started, or zero if it never did.
func (s *State) Elapsed() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return time.Since(s.StartedAt)
}
