package session

import (
	"math/rand"
)

type FilegridSession struct {
	Username string
	Id string
	Timestamp int64
}

type FilegridSessionStore interface {
	Install() error
	IsSessionStoreUsable() (bool, error)
	RegisterSession(username string, session string) error
	VerifySession(username string, target string) (bool, error)
	RevokeSession(username string, target string) error
}

const sessionChdict = "abcdefghijklmnopqrstuvwxyz0123456789"

func NewSessionString() string {
	res := make([]byte, 0, 48)
	for range 48 {
		res = append(res, sessionChdict[rand.Intn(len(sessionChdict))])
	}
	return string(res)
}
