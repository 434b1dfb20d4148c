package init

import (
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/session"
	"github.com/telsin/filegrid/pkg/filegrid/session/memcached"
	"github.com/telsin/filegrid/pkg/filegrid/session/redis_like"
	"github.com/telsin/filegrid/pkg/filegrid/session/sqlite"
)

func InitializeSessionStore(cfg *filegrid.FilegridConfig) (session.FilegridSessionStore, error) {
	switch cfg.Session.Type {
	case "sqlite": return sqlite.NewFilegridSqliteSessionStore(cfg)
	case "memcached": return memcached.NewFilegridMemcachedSessionStore(cfg)
	case "redis": fallthrough
	case "keydb": fallthrough
	case "valkey":
		return redis_like.NewFilegridRedisLikeSessionStore(cfg)
	}
	return nil, db.NewFilegridDatabaseError(db.DATABASE_NOT_SUPPORTED, "session store type not supported")
}
