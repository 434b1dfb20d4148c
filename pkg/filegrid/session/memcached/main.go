package memcached

import (
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/telsin/filegrid/pkg/filegrid"
)

type FilegridMemcachedSessionStore struct {
	config *filegrid.FilegridConfig
	connection *memcache.Client
}

func NewFilegridMemcachedSessionStore(cfg *filegrid.FilegridConfig) (*FilegridMemcachedSessionStore, error) {
	c := memcache.New(cfg.Session.Host)
	return &FilegridMemcachedSessionStore{
		config: cfg,
		connection: c,
	}, nil
}

func (ss *FilegridMemcachedSessionStore) sessionKey(name string, session string) string {
	return fmt.Sprintf("%s:%s:session:%s", ss.config.Session.TablePrefix, name, session)
}

func (ss *FilegridMemcachedSessionStore) Install() error {
	return nil
}

func (ss *FilegridMemcachedSessionStore) IsSessionStoreUsable() (bool, error) {
	err := ss.connection.Ping()
	if err != nil { return false, err }
	return true, nil
}

// memcached has no sets, so each session gets its own key; the value
// is the registration timestamp. we never enumerate a user's
// sessions in the web process, so no per-user index is kept.
func (ss *FilegridMemcachedSessionStore) RegisterSession(name string, session string) error {
	timestampStr := fmt.Sprintf("%d", time.Now().UnixMilli())
	return ss.connection.Set(&memcache.Item{
		Key: ss.sessionKey(name, session),
		Value: []byte(timestampStr),
		Flags: 0,
		Expiration: 0,
	})
}

func (ss *FilegridMemcachedSessionStore) VerifySession(name string, target string) (bool, error) {
	i, err := ss.connection.Get(ss.sessionKey(name, target))
	// cache miss is memcached's way of saying the key not found...
	if err == memcache.ErrCacheMiss { return false, nil }
	if err != nil { return false, err }
	return len(i.Value) > 0, nil
}

func (ss *FilegridMemcachedSessionStore) RevokeSession(username string, target string) error {
	err := ss.connection.Delete(ss.sessionKey(username, target))
	if err != nil && err != memcache.ErrCacheMiss { return err }
	return nil
}
