package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-engine/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

// P1 and P2 alternate on the single box, P2 closes it.
const singleBoxGame = "0 0 1 0\n1 0 1 1\n0 1 1 1\n0 0 0 1\n"

func newTestShell(t *testing.T, yaml string) (*Shell, *bytes.Buffer) {
	t.Helper()

	c, err := config.LoadFromYamlBytes([]byte(yaml))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	s, err := NewShell(c, out, io.Discard)
	require.NoError(t, err)
	return s, out
}

func TestTextShellPlaysAndRestarts(t *testing.T) {
	s, out := newTestShell(t, "BoardSize: 2\nColor: false\n")

	require.NoError(t, s.Run(context.Background(), strings.NewReader(singleBoxGame)))
	require.NoError(t, s.Close())

	assert.Contains(t, out.String(), "Game Over! Player2 Win! (1:0)")
	assert.Contains(t, out.String(), " 2 ")
	assert.Equal(t, 0, s.game.StepCount())
	assert.Equal(t, chess.Player1, s.game.CurrentPlayer())
}

func TestTextShellKeepsFinishedGame(t *testing.T) {
	s, _ := newTestShell(t, "BoardSize: 2\nColor: false\nAutoRestart: false\n")

	require.NoError(t, s.Run(context.Background(), strings.NewReader(singleBoxGame)))
	assert.True(t, s.game.IsGameOver())
	assert.ErrorIs(t, s.Execute("0 0 1 0"), chess.ErrGameOver)

	require.NoError(t, s.Execute("reset"))
	assert.False(t, s.game.IsGameOver())
	require.NoError(t, s.Close())
}

func TestTextShellRejections(t *testing.T) {
	s, out := newTestShell(t, "BoardSize: 3\nColor: false\n")
	defer s.Close()

	assert.ErrorIs(t, s.Execute("0 0 1 1"), chess.ErrInvalidEdge)
	assert.ErrorIs(t, s.Execute("0 0 5 0"), chess.ErrInvalidEdge)
	require.NoError(t, s.Execute("0 0 1 0"))
	assert.ErrorIs(t, s.Execute("1 0 0 0"), chess.ErrAlreadyClaimed)
	assert.Error(t, s.Execute("claim"))
	assert.Error(t, s.Execute("click 1"))
	assert.NoError(t, s.Execute("   "))
	assert.Equal(t, 1, s.game.StepCount())

	out.Reset()
	require.NoError(t, s.Run(context.Background(), strings.NewReader("1 2 3 4\nquit\n0 1 1 1\n")))
	assert.Contains(t, out.String(), "error: ")
	assert.Equal(t, 1, s.game.StepCount())
}

func TestTextShellPointer(t *testing.T) {
	s, out := newTestShell(t, "BoardSize: 3\nColor: false\n")
	defer s.Close()

	require.NoError(t, s.Execute("hover 87 50"))
	assert.Contains(t, out.String(), "hover (0, 0) -> (1, 0)")

	require.NoError(t, s.Execute("click 87 50"))
	assert.True(t, s.game.IsLineOccupied(chess.NewEdge(chess.NewDot(0, 0), chess.NewDot(1, 0))))

	out.Reset()
	require.NoError(t, s.Execute("hover 87 50"))
	assert.Equal(t, "hover none\n", out.String())

	assert.ErrorIs(t, s.Execute("click 1000 1000"), chess.ErrInvalidEdge)
}

func TestJsonShellMessages(t *testing.T) {
	s, out := newTestShell(t, "BoardSize: 2\nOutput: json\nPushInterval: 1h\n")

	input := "0 0 1 1\n" + singleBoxGame + "quit\n"
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))
	require.NoError(t, s.Close())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)

	var kinds []string
	for _, line := range lines {
		kinds = append(kinds, message.Kind(line))
	}
	assert.Equal(t, []string{
		message.KindState,
		message.KindError,
		message.KindMove, message.KindMove, message.KindMove, message.KindMove,
		message.KindState,
		message.KindState,
	}, kinds)

	last, err := message.ParseMoveMessage(lines[5])
	require.NoError(t, err)
	assert.Equal(t, chess.Player2, last.Player)
	assert.Len(t, last.CompletedBoxes, 1)
	assert.True(t, last.GameOver)

	over, err := message.ParseStateMessage(lines[6])
	require.NoError(t, err)
	assert.Equal(t, chess.GameOver, over.State)
	assert.Equal(t, "Player2 Win!", over.Result)

	restarted, err := message.ParseStateMessage(lines[7])
	require.NoError(t, err)
	assert.Equal(t, chess.InProgress, restarted.State)
	assert.Zero(t, restarted.StepCount)
	assert.NotEqual(t, over.GameUid, restarted.GameUid)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newTestShell(t, "BoardSize: 2\nColor: false\n")
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()
	assert.ErrorIs(t, s.Run(ctx, r), context.Canceled)
}
