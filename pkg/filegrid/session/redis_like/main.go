package redis_like

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/telsin/filegrid/pkg/filegrid"
)

type FilegridRedisLikeSessionStore struct {
	config *filegrid.FilegridConfig
	connection *redis.Client
}

func NewFilegridRedisLikeSessionStore(cfg *filegrid.FilegridConfig) (*FilegridRedisLikeSessionStore, error) {
	c := redis.NewClient(&redis.Options{
		Addr: cfg.Session.Host,
		Username: cfg.Session.UserName,
		Password: cfg.Session.Password,
		DB: cfg.Session.DatabaseNumber,
	})
	return &FilegridRedisLikeSessionStore{
		config: cfg,
		connection: c,
	}, nil
}

func (ss *FilegridRedisLikeSessionStore) sessionKey(name string) string {
	return fmt.Sprintf("%s:%s:session", ss.config.Session.TablePrefix, name)
}

func (ss *FilegridRedisLikeSessionStore) Install() error {
	return nil
}

func (ss *FilegridRedisLikeSessionStore) IsSessionStoreUsable() (bool, error) {
	err := ss.connection.Ping(context.TODO()).Err()
	if err != nil { return false, err }
	return true, nil
}

// sessions of one user live in one hash keyed by the session string,
// value being the registration timestamp. multiple live sessions per
// user come for free this way.
func (ss *FilegridRedisLikeSessionStore) RegisterSession(name string, session string) error {
	timestampStr := fmt.Sprintf("%d", time.Now().UnixMilli())
	r := ss.connection.HSet(context.TODO(), ss.sessionKey(name), session, timestampStr)
	return r.Err()
}

func (ss *FilegridRedisLikeSessionStore) VerifySession(name string, target string) (bool, error) {
	cmd := ss.connection.HGet(context.TODO(), ss.sessionKey(name), target)
	if cmd.Err() == redis.Nil { return false, nil }
	if cmd.Err() != nil { return false, cmd.Err() }
	r, err := cmd.Result()
	if err != nil { return false, err }
	return len(r) > 0, nil
}

func (ss *FilegridRedisLikeSessionStore) RevokeSession(username string, target string) error {
	cmd := ss.connection.HDel(context.TODO(), ss.sessionKey(username), target)
	return cmd.Err()
}
