package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lakshaymaurya-felt/winsweep/internal/clean"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
)

// maxChildrenShown limits entries printed per level.
const maxChildrenShown = 20

// TreeNode is a directory or file in the size tree of a scan result.
type TreeNode struct {
	Name     string
	Path     string
	Size     uint64
	Files    int
	IsDir    bool
	Children []*TreeNode

	index map[string]*TreeNode
}

// BuildTree arranges scan records by directory. Sizes roll up to every
// ancestor; chains of single-child directories are folded into one node
// so deep cache paths print on one line. The returned root is unnamed.
func BuildTree(files []clean.FileRecord) *TreeNode {
	root := &TreeNode{IsDir: true}
	for _, f := range files {
		node := root
		parts := splitPath(f.Path)
		for i, part := range parts {
			node = node.child(part, i < len(parts)-1)
		}
		node.Size += f.Size
		node.Files++
	}
	root.rollUp()
	for _, c := range root.Children {
		c.fold()
	}
	return root
}

func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	if n.index == nil {
		n.index = make(map[string]*TreeNode)
	}
	if c, ok := n.index[name]; ok {
		return c
	}
	path := name
	if n.Path != "" {
		path = filepath.Join(n.Path, name)
	}
	c := &TreeNode{Name: name, Path: path, IsDir: isDir}
	n.index[name] = c
	n.Children = append(n.Children, c)
	return c
}

// rollUp sums sizes bottom-up and sorts each level largest first.
func (n *TreeNode) rollUp() {
	if !n.IsDir {
		return
	}
	n.Size, n.Files = 0, 0
	for _, c := range n.Children {
		c.rollUp()
		n.Size += c.Size
		n.Files += c.Files
	}
	sort.SliceStable(n.Children, func(i, j int) bool {
		if n.Children[i].Size != n.Children[j].Size {
			return n.Children[i].Size > n.Children[j].Size
		}
		return n.Children[i].Name < n.Children[j].Name
	})
	n.index = nil
}

func (n *TreeNode) fold() {
	for n.IsDir && len(n.Children) == 1 && n.Children[0].IsDir {
		only := n.Children[0]
		n.Name = filepath.Join(n.Name, only.Name)
		n.Path = only.Path
		n.Children = only.Children
	}
	for _, c := range n.Children {
		c.fold()
	}
}

// splitPath splits p into its volume root and the components below it.
func splitPath(p string) []string {
	p = filepath.Clean(p)
	vol := filepath.VolumeName(p)
	rest := strings.TrimPrefix(p[len(vol):], string(filepath.Separator))

	var parts []string
	if vol != "" || filepath.IsAbs(p) {
		parts = append(parts, vol+string(filepath.Separator))
	}
	if rest != "" {
		parts = append(parts, strings.Split(rest, string(filepath.Separator))...)
	}
	return parts
}

// PrintTree prints the tree with ASCII connectors (+-- \-- |) so it
// renders on every Windows console code page. maxDepth 0 means unlimited;
// entries smaller than minSize are hidden.
func PrintTree(w io.Writer, root *TreeNode, maxDepth int, minSize uint64) {
	if root == nil || len(root.Children) == 0 {
		fmt.Fprintln(w, "  Nothing to clean.")
		return
	}

	fmt.Fprintln(w, "  "+strings.Repeat("-", ruleWidth))
	for _, c := range root.Children {
		printNode(w, c, "", true, 0, maxDepth, minSize)
	}
	fmt.Fprintln(w, "  "+strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "  Total: %d %s, %s\n", root.Files, core.Plural(root.Files, "file"), core.FormatSize(root.Size))
}

func printNode(w io.Writer, n *TreeNode, prefix string, isLast bool, depth, maxDepth int, minSize uint64) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	if n.Size < minSize {
		return
	}

	connector := "+-- "
	childPrefix := "|   "
	if isLast {
		connector = "\\-- "
		childPrefix = "    "
	}
	// Top-level entries have no connector.
	if depth == 0 {
		connector = ""
		childPrefix = ""
	}

	label := n.Name
	if n.IsDir {
		label = strings.TrimSuffix(label, string(filepath.Separator)) + string(filepath.Separator)
		fmt.Fprintf(w, "  %s%s%s  %s (%d %s)\n", prefix, connector, label,
			core.FormatSize(n.Size), n.Files, core.Plural(n.Files, "file"))
	} else {
		fmt.Fprintf(w, "  %s%s%s  %s\n", prefix, connector, label, core.FormatSize(n.Size))
	}

	var visible []*TreeNode
	for _, c := range n.Children {
		if c.Size >= minSize {
			visible = append(visible, c)
		}
	}
	if maxDepth > 0 && depth+1 > maxDepth {
		return
	}

	shown := visible
	if len(shown) > maxChildrenShown {
		shown = shown[:maxChildrenShown]
	}
	for i, c := range shown {
		last := i == len(shown)-1 && len(visible) == len(shown)
		printNode(w, c, prefix+childPrefix, last, depth+1, maxDepth, minSize)
	}
	if more := len(visible) - len(shown); more > 0 {
		fmt.Fprintf(w, "  %s\\-- ... and %d more entries\n", prefix+childPrefix, more)
	}
}
