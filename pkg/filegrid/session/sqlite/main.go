package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/telsin/filegrid/pkg/filegrid"
	_ "github.com/mattn/go-sqlite3"
)

type FilegridSqliteSessionStore struct {
	config *filegrid.FilegridConfig
	connection *sql.DB
}

func NewFilegridSqliteSessionStore(cfg *filegrid.FilegridConfig) (*FilegridSqliteSessionStore, error) {
	conn, err := sql.Open("sqlite3", cfg.ProperSessionPath())
	if err != nil { return nil, err }
	return &FilegridSqliteSessionStore{
		config: cfg,
		connection: conn,
	}, nil
}

func (ss *FilegridSqliteSessionStore) Dispose() error {
	return ss.connection.Close()
}

func (ss *FilegridSqliteSessionStore) Install() error {
	tx, err := ss.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %ssession (
    user_name TEXT,
    value TEXT,
    reg_timestamp INTEGER
)`, ss.config.Session.TablePrefix))
	if err != nil { tx.Rollback(); return err }
	return tx.Commit()
}

func (ss *FilegridSqliteSessionStore) IsSessionStoreUsable() (bool, error) {
	tableName := fmt.Sprintf("%ssession", ss.config.Session.TablePrefix)
	stmt, err := ss.connection.Prepare("SELECT 1 FROM sqlite_schema WHERE type = 'table' AND name = ?")
	if err != nil { return false, err }
	defer stmt.Close()
	r := stmt.QueryRow(tableName)
	if r.Err() != nil { return false, r.Err() }
	var x string
	err = r.Scan(&x)
	if err == sql.ErrNoRows { return false, nil }
	if err != nil { return false, err }
	return len(x) > 0, nil
}

func (ss *FilegridSqliteSessionStore) RegisterSession(name string, session string) error {
	tx, err := ss.connection.Begin()
	if err != nil { return err }
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %ssession(user_name, value, reg_timestamp) VALUES (?,?,?)", ss.config.Session.TablePrefix))
	if err != nil { tx.Rollback(); return err }
	defer stmt.Close()
	_, err = stmt.Exec(name, session, time.Now().Unix())
	if err != nil { tx.Rollback(); return err }
	return tx.Commit()
}

func (ss *FilegridSqliteSessionStore) VerifySession(name string, target string) (bool, error) {
	stmt, err := ss.connection.Prepare(fmt.Sprintf("SELECT 1 FROM %ssession WHERE user_name = ? AND value = ?", ss.config.Session.TablePrefix))
	if err != nil { return false, err }
	defer stmt.Close()
	s := ""
	err = stmt.QueryRow(name, target).Scan(&s)
	if err == sql.ErrNoRows { return false, nil }
	if err != nil { return false, err }
	return len(s) > 0, nil
}

func (ss *FilegridSqliteSessionStore) RevokeSession(username string, target string) error {
	tx, err := ss.connection.Begin()
	if err != nil { return err }
	stmt, err := tx.Prepare(fmt.Sprintf("DELETE FROM %ssession WHERE user_name = ? AND value = ?", ss.config.Session.TablePrefix))
	if err != nil { tx.Rollback(); return err }
	defer stmt.Close()
	_, err = stmt.Exec(username, target)
	if err != nil { tx.Rollback(); return err }
	return tx.Commit()
}
