package init

import (
	"github.com/telsin/filegrid/pkg/filegrid"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/db/postgres"
	"github.com/telsin/filegrid/pkg/filegrid/db/sqlite"
)

func InitializeDatabase(cfg *filegrid.FilegridConfig) (db.FilegridDatabaseInterface, error) {
	switch cfg.Database.Type {
	case "sqlite": return sqlite.NewSqliteFilegridDatabaseInterface(cfg)
	case "postgres": return postgres.NewPostgresFilegridDatabaseInterface(cfg)
	}
	return nil, db.ErrDatabaseNotSupported
}
