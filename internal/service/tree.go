package service

import "github.com/chairulsabri/backend-windows-explorer/internal/model"

// BuildFolderTree nests a flat folder list into root nodes with their descendants.
// Siblings keep the order of the input. Folders whose parent is not in the input are
// dropped along with everything below them, which also excludes cycles.
// Every node has a non-nil Children slice.
func BuildFolderTree(folders []model.Folder) []*model.FolderNode {
	nodes := make(map[int64]*model.FolderNode, len(folders))
	for i := range folders {
		nodes[folders[i].ID] = &model.FolderNode{
			Folder:   folders[i],
			Children: []*model.FolderNode{},
		}
	}

	roots := []*model.FolderNode{}
	for i := range folders {
		node := nodes[folders[i].ID]
		if folders[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*folders[i].ParentID]; ok && parent != node {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}

// FlattenFolderTree returns the folders of a tree in depth-first pre-order.
func FlattenFolderTree(roots []*model.FolderNode) []model.Folder {
	var out []model.Folder
	stack := make([]*model.FolderNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Folder)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}
