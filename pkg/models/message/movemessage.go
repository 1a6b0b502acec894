package message

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/bytedance/sonic"
)

const (
	KindMove  = "move"
	KindState = "state"
)

// MoveMessage is the diff emitted to rendering collaborators after an accepted claim.
type MoveMessage struct {
	Kind      string `json:"kind"`
	TimeStamp `json:"timeStamp"`
	GameUid   `json:"gameUid"`
	chess.MoveResult
}

func NewMoveMessage(uid GameUid, result chess.MoveResult) MoveMessage {
	return MoveMessage{
		Kind:       KindMove,
		TimeStamp:  NewTimeStamp(time.Now()),
		GameUid:    uid,
		MoveResult: result,
	}
}

func ParseMoveMessage(str string) (newMoveMessage MoveMessage, err error) {
	err = sonic.UnmarshalString(str, &newMoveMessage)
	return
}

func (m MoveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// StateMessage carries a full snapshot, sent on game start, reset and game over.
type StateMessage struct {
	Kind      string `json:"kind"`
	TimeStamp `json:"timeStamp"`
	chess.Snapshot
	Result string `json:"result,omitempty"`
}

func NewStateMessage(g *chess.Game) StateMessage {
	return StateMessage{
		Kind:      KindState,
		TimeStamp: NewTimeStamp(time.Now()),
		Snapshot:  g.Snapshot(),
		Result:    g.ResultMessage(),
	}
}

func ParseStateMessage(str string) (newStateMessage StateMessage, err error) {
	err = sonic.UnmarshalString(str, &newStateMessage)
	return
}

func (m StateMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
