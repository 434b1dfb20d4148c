package sqlite

import "fmt"

func (dbif *SqliteFilegridDatabaseInterface) InstallTables() error {
	pfx := dbif.config.Database.TablePrefix
	tx, err := dbif.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %suser (
    user_name TEXT UNIQUE,
    user_title TEXT,
    user_email TEXT,
    user_reg_datetime INTEGER,
    user_password_hash TEXT,
    user_status INTEGER
)`, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %scomponent (
    component_id TEXT UNIQUE,
    component_title TEXT,
    component_description TEXT,
    component_owner TEXT,
    component_github_user TEXT,
    component_github_repo TEXT,
    component_status INTEGER,
    component_reg_datetime INTEGER,
    FOREIGN KEY (component_owner) REFERENCES %suser(user_name)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %stree_node (
    component_id TEXT,
    node_path TEXT,
    node_parent_path TEXT,
    node_type INTEGER,
    node_ext TEXT,
    node_download_url TEXT,
    node_uid TEXT,
    node_depth INTEGER,
    node_content TEXT,
    FOREIGN KEY (component_id) REFERENCES %scomponent(component_id)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %sfile_version (
    component_id TEXT,
    file_path TEXT,
    version_sha TEXT,
    version_datetime INTEGER,
    version_author_email TEXT,
    version_download_url TEXT,
    FOREIGN KEY (component_id) REFERENCES %scomponent(component_id)
)`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }

	_, err = tx.Exec(fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_%suser_user_name
ON %suser (user_name)
`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }

	_, err = tx.Exec(fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_%stree_node_path
ON %stree_node (component_id, node_path)
`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }

	_, err = tx.Exec(fmt.Sprintf(`
CREATE INDEX IF NOT EXISTS idx_%stree_node_parent
ON %stree_node (component_id, node_parent_path)
`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }

	_, err = tx.Exec(fmt.Sprintf(`
CREATE INDEX IF NOT EXISTS idx_%sfile_version_path
ON %sfile_version (component_id, file_path)
`, pfx, pfx))
	if err != nil { tx.Rollback(); return err }

	return tx.Commit()
}
