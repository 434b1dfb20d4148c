package db

import "github.com/telsin/filegrid/pkg/filegrid/model"

type FilegridDatabaseInterface interface {
	// we have to discern between "database unusable" and "error
	// while detecting".
	IsDatabaseUsable() (bool, error)
	InstallTables() error
	Dispose() error

	GetUserByName(name string) (*model.FilegridUser, error)
	RegisterUser(name string, title string, email string, passwordHash string, status model.FilegridUserStatus) (*model.FilegridUser, error)
	UpdateUserPassword(name string, newPasswordHash string) error
	HardDeleteUserByName(name string) error

	GetComponentById(id string) (*model.Component, error)
	// components visible to `username`: public ones plus the ones
	// owned by `username`. empty username means anonymous.
	GetAllVisibleComponent(username string) ([]*model.Component, error)
	RegisterComponent(id string, title string, owner string, githubUser string, githubRepo string, status model.ComponentStatus) (*model.Component, error)
	UpdateComponentInfo(id string, cobj *model.Component) error
	HardDeleteComponentById(id string) error

	// the full mirrored tree of a component, ordered depth-first so
	// that a row's children directly follow it.
	GetComponentTree(componentId string) ([]*model.TreeNode, error)
	// direct children of a folder, folders first, then by path.
	GetChildNodes(componentId string, parentPath string) ([]*model.TreeNode, error)
	GetTreeNodeByPath(componentId string, path string) (*model.TreeNode, error)
	GetFileContent(componentId string, path string) (string, error)
	// atomically replaces the whole mirrored tree of a component.
	// used by the sync process.
	ReplaceComponentTree(componentId string, nodes []*model.TreeNode) error

	// version records of a file, newest first.
	GetAllFileVersion(componentId string, path string) ([]*model.FileVersion, error)
	AddFileVersion(v *model.FileVersion) error
	// removes the tree row and all version records of a file in one
	// transaction.
	HardDeleteFile(componentId string, path string) error
}
