package message

import (
	"time"

	"github.com/bytedance/sonic"
)

const KindError = "error"

// ErrorMessage reports a rejected command to json consumers.
type ErrorMessage struct {
	Kind      string `json:"kind"`
	TimeStamp `json:"timeStamp"`
	GameUid   `json:"gameUid"`
	Error     string `json:"error"`
}

func NewErrorMessage(uid GameUid, err error) ErrorMessage {
	return ErrorMessage{
		Kind:      KindError,
		TimeStamp: NewTimeStamp(time.Now()),
		GameUid:   uid,
		Error:     err.Error(),
	}
}

func (m ErrorMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

// Kind peeks at the kind of an encoded message.
func Kind(str string) string {
	var head struct {
		Kind string `json:"kind"`
	}
	_ = sonic.UnmarshalString(str, &head)
	return head.Kind
}
