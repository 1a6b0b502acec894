package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (u GameUid) Valid() bool {
	_, err := uuid.Parse(string(u))
	return err == nil
}
