package postgres

import (
	"context"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/telsin/filegrid/pkg/filegrid"
)

type PostgresFilegridDatabaseInterface struct {
	config *filegrid.FilegridConfig
	pool *pgxpool.Pool
}

var requiredTableList = []string{
	"user",
	"component",
	"tree_node",
	"file_version",
}

func NewPostgresFilegridDatabaseInterface(cfg *filegrid.FilegridConfig) (*PostgresFilegridDatabaseInterface, error) {
	u := &url.URL{
		Scheme: "postgres",
		User: url.UserPassword(cfg.Database.UserName, cfg.Database.Password),
		Host: cfg.Database.URL,
		Path: cfg.Database.DatabaseName,
	}
	pool, err := pgxpool.New(context.TODO(), u.String())
	if err != nil { return nil, err }
	return &PostgresFilegridDatabaseInterface{
		config: cfg,
		pool: pool,
	}, nil
}

func (dbif *PostgresFilegridDatabaseInterface) IsDatabaseUsable() (bool, error) {
	for _, item := range requiredTableList {
		tableName := dbif.config.Database.TablePrefix + item
		r := dbif.pool.QueryRow(context.TODO(), `
SELECT count(*) FROM information_schema.tables WHERE table_name = $1
`, tableName)
		var cnt int
		err := r.Scan(&cnt)
		if err != nil { return false, err }
		if cnt <= 0 { return false, nil }
	}
	return true, nil
}

func (dbif *PostgresFilegridDatabaseInterface) Dispose() error {
	dbif.pool.Close()
	return nil
}
