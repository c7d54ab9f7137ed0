package service

import (
	"strings"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

// joinPath appends name to dir with exactly one separator, so the root "/" yields "/name".
func joinPath(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// subtreePrefix is the prefix shared by every path strictly below p.
func subtreePrefix(p string) string {
	return strings.TrimSuffix(p, "/") + "/"
}

// filePathIn is the path of a file named name inside folder. A nil folder detaches the
// file from the hierarchy and its path is the bare name.
func filePathIn(folder *model.Folder, name string) string {
	if folder == nil {
		return name
	}
	return joinPath(folder.Path, name)
}

// folderPathIn is the path of a folder named name under parent; top-level folders get "/name".
func folderPathIn(parent *model.Folder, name string) string {
	if parent == nil {
		return "/" + name
	}
	return joinPath(parent.Path, name)
}
