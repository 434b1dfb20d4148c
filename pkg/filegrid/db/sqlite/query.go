package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/model"
	_ "github.com/mattn/go-sqlite3"
)

func (dbif *SqliteFilegridDatabaseInterface) GetUserByName(name string) (*model.FilegridUser, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT user_name, user_title, user_email, user_reg_datetime, user_password_hash, user_status
FROM %suser
WHERE user_name = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var username, title, email, ph string
	var regTime int64
	var status int
	err = stmt.QueryRow(name).Scan(&username, &title, &email, &regTime, &ph, &status)
	if err == sql.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "user not found") }
	if err != nil { return nil, err }
	return &model.FilegridUser{
		Name: username,
		Title: title,
		Email: email,
		RegisterTime: regTime,
		PasswordHash: ph,
		Status: model.FilegridUserStatus(status),
	}, nil
}

func (dbif *SqliteFilegridDatabaseInterface) RegisterUser(name string, title string, email string, passwordHash string, status model.FilegridUserStatus) (*model.FilegridUser, error) {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.GetUserByName(name)
	if err == nil { return nil, db.NewFilegridDatabaseError(db.ENTITY_ALREADY_EXISTS, "user already exists") }
	if !db.IsEntityNotFound(err) { return nil, err }
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %suser(user_name, user_title, user_email, user_reg_datetime, user_password_hash, user_status)
VALUES (?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	regTime := time.Now().Unix()
	_, err = stmt.Exec(name, title, email, regTime, passwordHash, int(status))
	if err != nil { return nil, err }
	return &model.FilegridUser{
		Name: name,
		Title: title,
		Email: email,
		RegisterTime: regTime,
		PasswordHash: passwordHash,
		Status: status,
	}, nil
}

func (dbif *SqliteFilegridDatabaseInterface) UpdateUserPassword(name string, newPasswordHash string) error {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
UPDATE %suser SET user_password_hash = ? WHERE user_name = ?
`, pfx))
	if err != nil { return err }
	defer stmt.Close()
	_, err = stmt.Exec(newPasswordHash, name)
	return err
}

func (dbif *SqliteFilegridDatabaseInterface) HardDeleteUserByName(name string) error {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
DELETE FROM %suser WHERE user_name = ?
`, pfx))
	if err != nil { return err }
	defer stmt.Close()
	_, err = stmt.Exec(name)
	return err
}

func (dbif *SqliteFilegridDatabaseInterface) GetComponentById(id string) (*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, component_title, component_description, component_owner,
       component_github_user, component_github_repo, component_status, component_reg_datetime
FROM %scomponent
WHERE component_id = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var cid, title, description, owner, ghUser, ghRepo string
	var status int
	var regTime int64
	err = stmt.QueryRow(id).Scan(&cid, &title, &description, &owner, &ghUser, &ghRepo, &status, &regTime)
	if err == sql.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "component not found") }
	if err != nil { return nil, err }
	return &model.Component{
		Id: cid,
		Title: title,
		Description: description,
		Owner: owner,
		GithubUser: ghUser,
		GithubRepo: ghRepo,
		Status: model.ComponentStatus(status),
		RegisterTime: regTime,
	}, nil
}

func (dbif *SqliteFilegridDatabaseInterface) GetAllVisibleComponent(username string) ([]*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, component_title, component_description, component_owner,
       component_github_user, component_github_repo, component_status, component_reg_datetime
FROM %scomponent
WHERE component_status = ? OR component_owner = ?
ORDER BY component_title
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(int(model.COMPONENT_PUBLIC), username)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.Component, 0)
	for r.Next() {
		var cid, title, description, owner, ghUser, ghRepo string
		var status int
		var regTime int64
		err = r.Scan(&cid, &title, &description, &owner, &ghUser, &ghRepo, &status, &regTime)
		if err != nil { return nil, err }
		res = append(res, &model.Component{
			Id: cid,
			Title: title,
			Description: description,
			Owner: owner,
			GithubUser: ghUser,
			GithubRepo: ghRepo,
			Status: model.ComponentStatus(status),
			RegisterTime: regTime,
		})
	}
	return res, nil
}

func (dbif *SqliteFilegridDatabaseInterface) RegisterComponent(id string, title string, owner string, githubUser string, githubRepo string, status model.ComponentStatus) (*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.GetComponentById(id)
	if err == nil { return nil, db.NewFilegridDatabaseError(db.ENTITY_ALREADY_EXISTS, "component already exists") }
	if !db.IsEntityNotFound(err) { return nil, err }
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %scomponent(component_id, component_title, component_description, component_owner,
    component_github_user, component_github_repo, component_status, component_reg_datetime)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	regTime := time.Now().Unix()
	_, err = stmt.Exec(id, title, "", owner, githubUser, githubRepo, int(status), regTime)
	if err != nil { return nil, err }
	return &model.Component{
		Id: id,
		Title: title,
		Owner: owner,
		GithubUser: githubUser,
		GithubRepo: githubRepo,
		Status: status,
		RegisterTime: regTime,
	}, nil
}

func (dbif *SqliteFilegridDatabaseInterface) UpdateComponentInfo(id string, cobj *model.Component) error {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
UPDATE %scomponent
SET component_title = ?, component_description = ?, component_owner = ?,
    component_github_user = ?, component_github_repo = ?, component_status = ?
WHERE component_id = ?
`, pfx))
	if err != nil { return err }
	defer stmt.Close()
	_, err = stmt.Exec(cobj.Title, cobj.Description, cobj.Owner, cobj.GithubUser, cobj.GithubRepo, int(cobj.Status), id)
	return err
}

func (dbif *SqliteFilegridDatabaseInterface) HardDeleteComponentById(id string) error {
	pfx := dbif.config.Database.TablePrefix
	tx, err := dbif.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %sfile_version WHERE component_id = ?`, pfx), id)
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = ?`, pfx), id)
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %scomponent WHERE component_id = ?`, pfx), id)
	if err != nil { tx.Rollback(); return err }
	return tx.Commit()
}

func scanTreeNodeRows(r *sql.Rows) ([]*model.TreeNode, error) {
	res := make([]*model.TreeNode, 0)
	for r.Next() {
		var cid, nodePath, parentPath, ext, downloadUrl, uid string
		var nodeType, depth int
		err := r.Scan(&cid, &nodePath, &parentPath, &nodeType, &ext, &downloadUrl, &uid, &depth)
		if err != nil { return nil, err }
		res = append(res, &model.TreeNode{
			ComponentId: cid,
			Path: nodePath,
			ParentPath: parentPath,
			Type: model.TreeNodeType(nodeType),
			Ext: ext,
			DownloadURL: downloadUrl,
			Uid: uid,
			Depth: depth,
		})
	}
	return res, nil
}

func (dbif *SqliteFilegridDatabaseInterface) GetComponentTree(componentId string) ([]*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = ?
ORDER BY node_path
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(componentId)
	if err != nil { return nil, err }
	defer r.Close()
	return scanTreeNodeRows(r)
}

func (dbif *SqliteFilegridDatabaseInterface) GetChildNodes(componentId string, parentPath string) ([]*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = ? AND node_parent_path = ?
ORDER BY node_type, node_path
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(componentId, parentPath)
	if err != nil { return nil, err }
	defer r.Close()
	return scanTreeNodeRows(r)
}

func (dbif *SqliteFilegridDatabaseInterface) GetTreeNodeByPath(componentId string, path string) (*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = ? AND node_path = ?
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	var cid, nodePath, parentPath, ext, downloadUrl, uid string
	var nodeType, depth int
	err = stmt.QueryRow(componentId, path).Scan(&cid, &nodePath, &parentPath, &nodeType, &ext, &downloadUrl, &uid, &depth)
	if err == sql.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "tree node not found") }
	if err != nil { return nil, err }
	return &model.TreeNode{
		ComponentId: cid,
		Path: nodePath,
		ParentPath: parentPath,
		Type: model.TreeNodeType(nodeType),
		Ext: ext,
		DownloadURL: downloadUrl,
		Uid: uid,
		Depth: depth,
	}, nil
}

func (dbif *SqliteFilegridDatabaseInterface) GetFileContent(componentId string, path string) (string, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT node_content FROM %stree_node WHERE component_id = ? AND node_path = ? AND node_type = ?
`, pfx))
	if err != nil { return "", err }
	defer stmt.Close()
	var content sql.NullString
	err = stmt.QueryRow(componentId, path, int(model.TREE_NODE_FILE)).Scan(&content)
	if err == sql.ErrNoRows { return "", db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "file not found") }
	if err != nil { return "", err }
	if !content.Valid { return "", nil }
	return content.String, nil
}

func (dbif *SqliteFilegridDatabaseInterface) ReplaceComponentTree(componentId string, nodes []*model.TreeNode) error {
	pfx := dbif.config.Database.TablePrefix
	tx, err := dbif.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = ?`, pfx), componentId)
	if err != nil { tx.Rollback(); return err }
	stmt, err := tx.Prepare(fmt.Sprintf(`
INSERT INTO %stree_node(component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth, node_content)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { tx.Rollback(); return err }
	defer stmt.Close()
	for _, n := range nodes {
		// every row needs a uid to wire the toggle control back to;
		// mint one for callers that didn't.
		if len(n.Uid) <= 0 { n.Uid = uuid.NewString() }
		_, err = stmt.Exec(componentId, n.Path, n.ParentPath, int(n.Type), n.Ext, n.DownloadURL, n.Uid, n.Depth, n.Content)
		if err != nil { tx.Rollback(); return err }
	}
	return tx.Commit()
}

func (dbif *SqliteFilegridDatabaseInterface) GetAllFileVersion(componentId string, path string) ([]*model.FileVersion, error) {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
SELECT component_id, file_path, version_sha, version_datetime, version_author_email, version_download_url
FROM %sfile_version
WHERE component_id = ? AND file_path = ?
ORDER BY version_datetime DESC
`, pfx))
	if err != nil { return nil, err }
	defer stmt.Close()
	r, err := stmt.Query(componentId, path)
	if err != nil { return nil, err }
	defer r.Close()
	res := make([]*model.FileVersion, 0)
	for r.Next() {
		var cid, filePath, sha, authorEmail, downloadUrl string
		var date int64
		err = r.Scan(&cid, &filePath, &sha, &date, &authorEmail, &downloadUrl)
		if err != nil { return nil, err }
		res = append(res, &model.FileVersion{
			ComponentId: cid,
			Path: filePath,
			Sha: sha,
			Date: date,
			AuthorEmail: authorEmail,
			DownloadURL: downloadUrl,
		})
	}
	return res, nil
}

func (dbif *SqliteFilegridDatabaseInterface) AddFileVersion(v *model.FileVersion) error {
	pfx := dbif.config.Database.TablePrefix
	stmt, err := dbif.connection.Prepare(fmt.Sprintf(`
INSERT INTO %sfile_version(component_id, file_path, version_sha, version_datetime, version_author_email, version_download_url)
VALUES (?, ?, ?, ?, ?, ?)
`, pfx))
	if err != nil { return err }
	defer stmt.Close()
	_, err = stmt.Exec(v.ComponentId, v.Path, v.Sha, v.Date, v.AuthorEmail, v.DownloadURL)
	return err
}

func (dbif *SqliteFilegridDatabaseInterface) HardDeleteFile(componentId string, path string) error {
	pfx := dbif.config.Database.TablePrefix
	tx, err := dbif.connection.Begin()
	if err != nil { return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %sfile_version WHERE component_id = ? AND file_path = ?`, pfx), componentId, path)
	if err != nil { tx.Rollback(); return err }
	_, err = tx.Exec(fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = ? AND node_path = ? AND node_type = ?`, pfx), componentId, path, int(model.TREE_NODE_FILE))
	if err != nil { tx.Rollback(); return err }
	return tx.Commit()
}
