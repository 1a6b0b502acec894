package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/ui"
	"github.com/zeromicro/go-zero/core/logx"
)

const helpText = `commands:
  x1 y1 x2 y2   claim the edge between two adjacent dots
  click x y     claim the edge nearest to a pixel position
  hover x y     show which free edge a pixel position points at
  show          print the board
  reset         start a new game
  help          print this text
  quit          leave
`

var errQuit = errors.New("quit")

// Shell reads commands line by line and drives one game.
type Shell struct {
	game        *chess.Game
	layout      ui.Layout
	board       *ui.TextBoard
	out         io.Writer
	bar         *model.Bar
	pusher      *pusher.Pusher[string]
	jsonOutput  bool
	autoRestart bool
	logger      logx.Logger
}

// NewShell writes the board to out and the progress bar to progress. In json mode progress is unused.
func NewShell(c config.Config, out, progress io.Writer) (*Shell, error) {
	s := &Shell{
		layout: ui.Layout{
			BoardSize:   c.BoardSize,
			DotDistance: float32(c.Layout.DotDistance),
			DotWidth:    float32(c.Layout.DotWidth),
			DotMargin:   float32(c.Layout.DotMargin),
		},
		board:       ui.NewTextBoard(c.Color),
		out:         out,
		jsonOutput:  c.Output == config.OutputJson,
		autoRestart: c.AutoRestart,
		logger:      logx.WithContext(context.Background()),
	}

	game, err := chess.NewGame(c.BoardSize, chess.WithLogger(s.logger), chess.WithMoveHook(s.onMove))
	if err != nil {
		return nil, err
	}
	s.game = game

	if s.jsonOutput {
		s.pusher = pusher.NewPusher(
			pusher.WithPushInterval[string](c.PushInterval),
			pusher.WithPushLogic(func(lines ...string) error {
				_, err := io.WriteString(s.out, strings.Join(lines, "\n")+"\n")
				return err
			}),
			pusher.WithErrorHandler[string](func(err error) { s.logger.Errorf("write messages: %v", err) }),
		)
		s.pusher.Start()
	} else {
		s.bar = model.NewBar(game.TotalEdgesCount(), "edges", progress)
	}

	s.emitState()
	return s, nil
}

// Run processes commands from r until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			if err := s.Execute(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				s.reportError(err)
			}
		}
	}
}

// Execute runs a single command line.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		s.print(helpText)
		return nil
	case "show":
		s.emitState()
		return nil
	case "reset":
		s.game.Reset()
		s.emitState()
		return nil
	case "click":
		x, y, err := parsePoint(fields[1:])
		if err != nil {
			return err
		}
		e, ok := s.layout.Snap(x, y)
		if !ok {
			return fmt.Errorf("%w: no edge near (%v, %v)", chess.ErrInvalidEdge, x, y)
		}
		return s.claim(e)
	case "hover":
		x, y, err := parsePoint(fields[1:])
		if err != nil {
			return err
		}
		if e, ok := s.layout.Hover(s.game, x, y); ok {
			s.print(fmt.Sprintf("hover %s\n", e))
		} else {
			s.print("hover none\n")
		}
		return nil
	}

	coordinates, err := parseInts(fields, 4)
	if err != nil {
		return fmt.Errorf("unknown command %q, try help", line)
	}

	e, err := chess.ParseEdge(s.game.BoardSize(), coordinates[0], coordinates[1], coordinates[2], coordinates[3])
	if err != nil {
		return err
	}
	return s.claim(e)
}

func (s *Shell) claim(e chess.Edge) error {
	if _, err := s.game.ClaimEdge(e); err != nil {
		return err
	}

	if !s.jsonOutput {
		s.emitState()
	}

	if s.game.IsGameOver() {
		if s.jsonOutput {
			s.emitState()
		}
		if s.autoRestart {
			s.game.Reset()
			s.emitState()
		}
	}
	return nil
}

func (s *Shell) onMove(result chess.MoveResult) {
	if s.jsonOutput {
		s.pusher.AddMessages(message.NewMoveMessage(message.GameUid(s.game.Uid()), result).String())
	}
}

func (s *Shell) emitState() {
	if s.jsonOutput {
		s.pusher.AddMessages(message.NewStateMessage(s.game).String())
		return
	}

	s.print(s.board.Render(s.game.Snapshot()))
	if s.game.StepCount() == 0 {
		s.bar.Reset()
	}
	if err := s.bar.Goto(s.game.StepCount()); err != nil {
		s.logger.Errorf("progress bar: %v", err)
	}
}

func (s *Shell) reportError(err error) {
	s.logger.Infof("rejected command: %v", err)
	if s.jsonOutput {
		s.pusher.AddMessages(message.NewErrorMessage(message.GameUid(s.game.Uid()), err).String())
		return
	}
	s.print(fmt.Sprintf("error: %v\n", err))
}

func (s *Shell) print(str string) {
	if s.jsonOutput {
		return
	}
	if _, err := io.WriteString(s.out, str); err != nil {
		s.logger.Errorf("write board: %v", err)
	}
}

// Close flushes pending json messages and releases the progress bar.
func (s *Shell) Close() error {
	if s.pusher != nil {
		return s.pusher.Stop()
	}
	if s.bar != nil {
		return s.bar.Close()
	}
	return nil
}

func parseInts(fields []string, n int) ([]int, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(fields))
	}

	values := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parsePoint(fields []string) (float32, float32, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want x y, got %d values", len(fields))
	}

	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, err
	}
	return float32(x), float32(y), nil
}
