package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/model"
)

func (dbif *PostgresFilegridDatabaseInterface) GetUserByName(name string) (*model.FilegridUser, error) {
	pfx := dbif.config.Database.TablePrefix
	r := dbif.pool.QueryRow(context.TODO(), fmt.Sprintf(`
SELECT user_name, user_title, user_email, user_reg_datetime, user_password_hash, user_status
FROM %suser
WHERE user_name = $1
`, pfx), name)
	var username, title, email, ph string
	var regTime int64
	var status int
	err := r.Scan(&username, &title, &email, &regTime, &ph, &status)
	if err == pgx.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "user not found") }
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

func (dbif *PostgresFilegridDatabaseInterface) RegisterUser(name string, title string, email string, passwordHash string, status model.FilegridUserStatus) (*model.FilegridUser, error) {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.GetUserByName(name)
	if err == nil { return nil, db.NewFilegridDatabaseError(db.ENTITY_ALREADY_EXISTS, "user already exists") }
	if !db.IsEntityNotFound(err) { return nil, err }
	regTime := time.Now().Unix()
	_, err = dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
INSERT INTO %suser(user_name, user_title, user_email, user_reg_datetime, user_password_hash, user_status)
VALUES ($1, $2, $3, $4, $5, $6)
`, pfx), name, title, email, regTime, passwordHash, int(status))
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

func (dbif *PostgresFilegridDatabaseInterface) UpdateUserPassword(name string, newPasswordHash string) error {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
UPDATE %suser SET user_password_hash = $1 WHERE user_name = $2
`, pfx), newPasswordHash, name)
	return err
}

func (dbif *PostgresFilegridDatabaseInterface) HardDeleteUserByName(name string) error {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
DELETE FROM %suser WHERE user_name = $1
`, pfx), name)
	return err
}

func (dbif *PostgresFilegridDatabaseInterface) GetComponentById(id string) (*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	r := dbif.pool.QueryRow(context.TODO(), fmt.Sprintf(`
SELECT component_id, component_title, component_description, component_owner,
       component_github_user, component_github_repo, component_status, component_reg_datetime
FROM %scomponent
WHERE component_id = $1
`, pfx), id)
	var cid, title, description, owner, ghUser, ghRepo string
	var status int
	var regTime int64
	err := r.Scan(&cid, &title, &description, &owner, &ghUser, &ghRepo, &status, &regTime)
	if err == pgx.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "component not found") }
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

func (dbif *PostgresFilegridDatabaseInterface) GetAllVisibleComponent(username string) ([]*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	r, err := dbif.pool.Query(context.TODO(), fmt.Sprintf(`
SELECT component_id, component_title, component_description, component_owner,
       component_github_user, component_github_repo, component_status, component_reg_datetime
FROM %scomponent
WHERE component_status = $1 OR component_owner = $2
ORDER BY component_title
`, pfx), int(model.COMPONENT_PUBLIC), username)
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

func (dbif *PostgresFilegridDatabaseInterface) RegisterComponent(id string, title string, owner string, githubUser string, githubRepo string, status model.ComponentStatus) (*model.Component, error) {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.GetComponentById(id)
	if err == nil { return nil, db.NewFilegridDatabaseError(db.ENTITY_ALREADY_EXISTS, "component already exists") }
	if !db.IsEntityNotFound(err) { return nil, err }
	regTime := time.Now().Unix()
	_, err = dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
INSERT INTO %scomponent(component_id, component_title, component_description, component_owner,
    component_github_user, component_github_repo, component_status, component_reg_datetime)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, pfx), id, title, "", owner, githubUser, githubRepo, int(status), regTime)
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

func (dbif *PostgresFilegridDatabaseInterface) UpdateComponentInfo(id string, cobj *model.Component) error {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
UPDATE %scomponent
SET component_title = $1, component_description = $2, component_owner = $3,
    component_github_user = $4, component_github_repo = $5, component_status = $6
WHERE component_id = $7
`, pfx), cobj.Title, cobj.Description, cobj.Owner, cobj.GithubUser, cobj.GithubRepo, int(cobj.Status), id)
	return err
}

func (dbif *PostgresFilegridDatabaseInterface) HardDeleteComponentById(id string) error {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.TODO()
	tx, err := dbif.pool.Begin(ctx)
	if err != nil { return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %sfile_version WHERE component_id = $1`, pfx), id)
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = $1`, pfx), id)
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %scomponent WHERE component_id = $1`, pfx), id)
	if err != nil { tx.Rollback(ctx); return err }
	return tx.Commit(ctx)
}

func scanTreeNodeRows(r pgx.Rows) ([]*model.TreeNode, error) {
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

func (dbif *PostgresFilegridDatabaseInterface) GetComponentTree(componentId string) ([]*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	r, err := dbif.pool.Query(context.TODO(), fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = $1
ORDER BY node_path
`, pfx), componentId)
	if err != nil { return nil, err }
	defer r.Close()
	return scanTreeNodeRows(r)
}

func (dbif *PostgresFilegridDatabaseInterface) GetChildNodes(componentId string, parentPath string) ([]*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	r, err := dbif.pool.Query(context.TODO(), fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = $1 AND node_parent_path = $2
ORDER BY node_type, node_path
`, pfx), componentId, parentPath)
	if err != nil { return nil, err }
	defer r.Close()
	return scanTreeNodeRows(r)
}

func (dbif *PostgresFilegridDatabaseInterface) GetTreeNodeByPath(componentId string, path string) (*model.TreeNode, error) {
	pfx := dbif.config.Database.TablePrefix
	r := dbif.pool.QueryRow(context.TODO(), fmt.Sprintf(`
SELECT component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth
FROM %stree_node
WHERE component_id = $1 AND node_path = $2
`, pfx), componentId, path)
	var cid, nodePath, parentPath, ext, downloadUrl, uid string
	var nodeType, depth int
	err := r.Scan(&cid, &nodePath, &parentPath, &nodeType, &ext, &downloadUrl, &uid, &depth)
	if err == pgx.ErrNoRows { return nil, db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "tree node not found") }
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

func (dbif *PostgresFilegridDatabaseInterface) GetFileContent(componentId string, path string) (string, error) {
	pfx := dbif.config.Database.TablePrefix
	r := dbif.pool.QueryRow(context.TODO(), fmt.Sprintf(`
SELECT coalesce(node_content, '') FROM %stree_node WHERE component_id = $1 AND node_path = $2 AND node_type = $3
`, pfx), componentId, path, int(model.TREE_NODE_FILE))
	var content string
	err := r.Scan(&content)
	if err == pgx.ErrNoRows { return "", db.NewFilegridDatabaseError(db.ENTITY_NOT_FOUND, "file not found") }
	if err != nil { return "", err }
	return content, nil
}

func (dbif *PostgresFilegridDatabaseInterface) ReplaceComponentTree(componentId string, nodes []*model.TreeNode) error {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.TODO()
	tx, err := dbif.pool.Begin(ctx)
	if err != nil { return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = $1`, pfx), componentId)
	if err != nil { tx.Rollback(ctx); return err }
	for _, n := range nodes {
		// every row needs a uid to wire the toggle control back to;
		// mint one for callers that didn't.
		if len(n.Uid) <= 0 { n.Uid = uuid.NewString() }
		_, err = tx.Exec(ctx, fmt.Sprintf(`
INSERT INTO %stree_node(component_id, node_path, node_parent_path, node_type, node_ext, node_download_url, node_uid, node_depth, node_content)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, pfx), componentId, n.Path, n.ParentPath, int(n.Type), n.Ext, n.DownloadURL, n.Uid, n.Depth, n.Content)
		if err != nil { tx.Rollback(ctx); return err }
	}
	return tx.Commit(ctx)
}

func (dbif *PostgresFilegridDatabaseInterface) GetAllFileVersion(componentId string, path string) ([]*model.FileVersion, error) {
	pfx := dbif.config.Database.TablePrefix
	r, err := dbif.pool.Query(context.TODO(), fmt.Sprintf(`
SELECT component_id, file_path, version_sha, version_datetime, version_author_email, version_download_url
FROM %sfile_version
WHERE component_id = $1 AND file_path = $2
ORDER BY version_datetime DESC
`, pfx), componentId, path)
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

func (dbif *PostgresFilegridDatabaseInterface) AddFileVersion(v *model.FileVersion) error {
	pfx := dbif.config.Database.TablePrefix
	_, err := dbif.pool.Exec(context.TODO(), fmt.Sprintf(`
INSERT INTO %sfile_version(component_id, file_path, version_sha, version_datetime, version_author_email, version_download_url)
VALUES ($1, $2, $3, $4, $5, $6)
`, pfx), v.ComponentId, v.Path, v.Sha, v.Date, v.AuthorEmail, v.DownloadURL)
	return err
}

func (dbif *PostgresFilegridDatabaseInterface) HardDeleteFile(componentId string, path string) error {
	pfx := dbif.config.Database.TablePrefix
	ctx := context.TODO()
	tx, err := dbif.pool.Begin(ctx)
	if err != nil { return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %sfile_version WHERE component_id = $1 AND file_path = $2`, pfx), componentId, path)
	if err != nil { tx.Rollback(ctx); return err }
	_, err = tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %stree_node WHERE component_id = $1 AND node_path = $2 AND node_type = $3`, pfx), componentId, path, int(model.TREE_NODE_FILE))
	if err != nil { tx.Rollback(ctx); return err }
	return tx.Commit(ctx)
}
