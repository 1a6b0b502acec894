package chess

import (
	"fmt"
	"strconv"
)

type Turn int8

const (
	Player1 Turn = 1
	Player2 Turn = -1

	// Draw is only used as a winner value.
	Draw Turn = 0
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	case Draw:
		return "Draw"
	}
	return ""
}

// Next returns the opponent of t.
func (t Turn) Next() Turn { return -t }

// Number returns 1 for Player1, 2 for Player2 and 0 otherwise.
func (t Turn) Number() int {
	switch t {
	case Player1:
		return 1
	case Player2:
		return 2
	}
	return 0
}

func (t Turn) Valid() bool { return t == Player1 || t == Player2 }

// MarshalJSON encodes players as 1 and 2, and Draw as 0.
func (t Turn) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(t.Number())), nil
}

func (t *Turn) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}

	switch n {
	case 0:
		*t = Draw
	case 1:
		*t = Player1
	case 2:
		*t = Player2
	default:
		return fmt.Errorf("unknown player %d", n)
	}
	return nil
}
