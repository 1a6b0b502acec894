package chess

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

type State int8

const (
	InProgress State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "InProgress"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "InProgress":
		*s = InProgress
	case "GameOver":
		*s = GameOver
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}

// Game owns the full state of one Dots-and-Boxes game. It is not safe for concurrent use:
// every mutation must come from a single serialized input stream.
type Game struct {
	uid          string
	board        Board
	boxOwners    map[Box]Turn
	player1Score int
	player2Score int
	nowPlayer    Turn
	records      []MoveRecord
	over         bool
	winner       Turn

	logger   logx.Logger
	moveHook func(MoveResult)
}

type Option func(*Game)

func WithLogger(logger logx.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithMoveHook registers f to be called after every accepted move.
func WithMoveHook(f func(MoveResult)) Option {
	return func(g *Game) {
		g.moveHook = f
	}
}

// WithGameUid fixes the uid of the first game. Reset always draws a new one.
func WithGameUid(uid string) Option {
	return func(g *Game) {
		g.uid = uid
	}
}

func NewGame(boardSize int, options ...Option) (*Game, error) {
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger:   logx.WithContext(context.Background()),
		moveHook: func(MoveResult) {},
	}
	g.init(board)

	for _, option := range options {
		option(g)
	}

	g.logger.Infof("game %s started, board size %d", g.uid, boardSize)
	return g, nil
}

// Replay builds a game by claiming edges in order, stopping at the first rejected one.
func Replay(boardSize int, edges ...Edge) (*Game, error) {
	g, err := NewGame(boardSize)
	if err != nil {
		return nil, err
	}

	for i, e := range edges {
		if _, err := g.ClaimEdge(e); err != nil {
			return nil, fmt.Errorf("replay step %d: %w", i, err)
		}
	}
	return g, nil
}

func (g *Game) init(board Board) {
	g.uid = uuid.NewString()
	g.board = board
	g.boxOwners = make(map[Box]Turn, len(Boxes(board.BoardSize)))
	g.player1Score = 0
	g.player2Score = 0
	g.nowPlayer = Player1
	g.records = nil
	g.over = false
	g.winner = Draw
}

// Reset discards the current game and starts a new one on the same board size.
func (g *Game) Reset() {
	board, _ := NewBoard(g.board.BoardSize)
	g.init(board)
	g.logger.Infof("game %s started, board size %d", g.uid, board.BoardSize)
}

// ClaimEdge claims e for the current player.
func (g *Game) ClaimEdge(e Edge) (MoveResult, error) {
	if g.over {
		return MoveResult{}, fmt.Errorf("%w: cannot claim %s", ErrGameOver, e)
	}

	if !e.Valid(g.board.BoardSize) {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrInvalidEdge, e)
	}

	if owner, c := g.board.Owner(e); c {
		return MoveResult{}, fmt.Errorf("%w: %s by %s", ErrAlreadyClaimed, e, owner)
	}

	return g.add(e), nil
}

// ClaimEdgeAs claims e on behalf of player, which must be the current player.
func (g *Game) ClaimEdgeAs(player Turn, e Edge) (MoveResult, error) {
	if g.over {
		return MoveResult{}, fmt.Errorf("%w: cannot claim %s", ErrGameOver, e)
	}

	if player != g.nowPlayer {
		return MoveResult{}, fmt.Errorf("%w: %s moved, %s to play", ErrInvalidTurn, player, g.nowPlayer)
	}

	return g.ClaimEdge(e)
}

func (g *Game) add(e Edge) MoveResult {
	player := g.nowPlayer
	g.records = append(g.records, MoveRecord{
		TimeStamp:    time.Now(),
		Step:         g.StepCount(),
		Player:       player,
		MoveEdge:     e,
		Player1Score: g.player1Score,
		Player2Score: g.player2Score,
	})

	g.board.Edges[e] = player

	var completed []BoxClaim
	for _, box := range e.NearBoxes(g.board.BoardSize) {
		if _, owned := g.boxOwners[box]; owned {
			continue
		}

		if g.board.EdgesCountInBox(box) == 4 {
			g.boxOwners[box] = player
			completed = append(completed, NewBoxClaim(box, player))
		}
	}

	switch player {
	case Player1:
		g.player1Score += len(completed)
	case Player2:
		g.player2Score += len(completed)
	}

	if len(completed) == 0 {
		g.nowPlayer = player.Next()
	}

	if g.board.FreeEdgesCount() == 0 {
		g.over = true
		switch {
		case g.player1Score > g.player2Score:
			g.winner = Player1
		case g.player1Score < g.player2Score:
			g.winner = Player2
		default:
			g.winner = Draw
		}
	}

	result := MoveResult{
		Step:           g.StepCount(),
		Edge:           e,
		Player:         player,
		CompletedBoxes: completed,
		NextPlayer:     g.nowPlayer,
		Player1Score:   g.player1Score,
		Player2Score:   g.player2Score,
		GameOver:       g.over,
		Winner:         g.winner,
	}

	g.logger.Debugw("edge claimed",
		logx.Field("game", g.uid),
		logx.Field("step", result.Step),
		logx.Field("player", player.String()),
		logx.Field("edge", e.String()),
		logx.Field("boxes", len(completed)),
	)

	if g.over {
		g.logger.Infof("game %s over after %d moves: %s (%d:%d)", g.uid, result.Step, g.ResultMessage(), g.player1Score, g.player2Score)
	}

	g.moveHook(result)
	return result
}

func (g *Game) Uid() string { return g.uid }

func (g *Game) BoardSize() int { return g.board.BoardSize }

func (g *Game) CurrentPlayer() Turn { return g.nowPlayer }

func (g *Game) StepCount() int { return len(g.board.Edges) }

func (g *Game) TotalEdgesCount() int { return g.board.TotalEdgesCount() }

func (g *Game) FreeEdges() []Edge { return g.board.FreeEdges() }

func (g *Game) IsGameOver() bool { return g.over }

func (g *Game) State() State {
	if g.over {
		return GameOver
	}
	return InProgress
}

// IsLineOccupied reports whether e has been claimed. Invalid edges are never occupied.
func (g *Game) IsLineOccupied(e Edge) bool {
	return g.board.Contains(e)
}

// EdgeOwner returns the player that claimed e.
func (g *Game) EdgeOwner(e Edge) (Turn, bool) {
	return g.board.Owner(e)
}

func (g *Game) BoxOwner(box Box) (Turn, bool) {
	t, c := g.boxOwners[box]
	return t, c
}

func (g *Game) Score(player Turn) int {
	switch player {
	case Player1:
		return g.player1Score
	case Player2:
		return g.player2Score
	}
	return 0
}

// Winner returns the winner, or Draw on a tie. ok is false while the game is in progress.
func (g *Game) Winner() (winner Turn, ok bool) {
	if !g.over {
		return Draw, false
	}
	return g.winner, true
}

func (g *Game) ResultMessage() string {
	if !g.over {
		return ""
	}
	if g.winner == Draw {
		return "Draw!"
	}
	return g.winner.String() + " Win!"
}

// History returns a copy of the accepted moves, oldest first.
func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.records...)
}
