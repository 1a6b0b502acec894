package ui

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

const (
	dotGlyph        = "+"
	horizontalGlyph = "---"
	verticalGlyph   = "|"
)

// TextBoard draws snapshots as colored text: Player1 in blue, Player2 in red.
type TextBoard struct {
	au aurora.Aurora
}

func NewTextBoard(colors bool) *TextBoard {
	return &TextBoard{au: aurora.NewAurora(colors)}
}

func (b *TextBoard) paint(owner chess.Turn, s string) string {
	switch owner {
	case chess.Player1:
		return b.au.Blue(s).String()
	case chess.Player2:
		return b.au.Red(s).String()
	}
	return s
}

// Render draws the board followed by a status line.
func (b *TextBoard) Render(s chess.Snapshot) string {
	var builder strings.Builder

	for y := 0; y < s.BoardSize; y++ {
		for x := 0; x < s.BoardSize; x++ {
			builder.WriteString(dotGlyph)
			if x+1 == s.BoardSize {
				break
			}

			e := chess.NewEdge(chess.NewDot(x, y), chess.NewDot(x+1, y))
			if owner, c := s.EdgeOwner(e); c {
				builder.WriteString(b.paint(owner, horizontalGlyph))
			} else {
				builder.WriteString(strings.Repeat(" ", len(horizontalGlyph)))
			}
		}
		builder.WriteString("\n")

		if y+1 == s.BoardSize {
			break
		}

		for x := 0; x < s.BoardSize; x++ {
			e := chess.NewEdge(chess.NewDot(x, y), chess.NewDot(x, y+1))
			if owner, c := s.EdgeOwner(e); c {
				builder.WriteString(b.paint(owner, verticalGlyph))
			} else {
				builder.WriteString(" ")
			}
			if x+1 == s.BoardSize {
				break
			}

			if owner, c := s.BoxOwner(chess.Box(chess.NewDot(x, y))); c {
				builder.WriteString(b.paint(owner, fmt.Sprintf(" %d ", owner.Number())))
			} else {
				builder.WriteString("   ")
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString(b.Status(s))
	builder.WriteString("\n")
	return builder.String()
}

// Status is the score line, or the result announcement once the game is over.
func (b *TextBoard) Status(s chess.Snapshot) string {
	score := fmt.Sprintf("%s: %d  %s: %d",
		b.paint(chess.Player1, chess.Player1.String()), s.Player1Score,
		b.paint(chess.Player2, chess.Player2.String()), s.Player2Score)

	if s.State != chess.GameOver {
		return fmt.Sprintf("%s  |  %s to move", score, b.paint(s.CurrentPlayer, s.CurrentPlayer.String()))
	}

	return fmt.Sprintf("%s  |  Game Over! %s", score, b.Result(s))
}

// Result is the announcement for a finished game.
func (b *TextBoard) Result(s chess.Snapshot) string {
	switch s.Winner {
	case chess.Player1:
		return b.paint(chess.Player1, fmt.Sprintf("Player1 Win! (%d:%d)", s.Player1Score, s.Player2Score))
	case chess.Player2:
		return b.paint(chess.Player2, fmt.Sprintf("Player2 Win! (%d:%d)", s.Player2Score, s.Player1Score))
	}
	return fmt.Sprintf("Draw! (%d boxes each)", s.Player1Score)
}
