// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tree implements generic binary search trees: an unbalanced
// SearchTree and an AVL BalancedTree built on the same insert and remove paths.
// None of the types here are safe for concurrent use.
package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree is the shape layer shared by both search variants: it owns the root
// and answers traversal and shape queries. It is not safe for concurrent
// mutation.
type Tree[K any] struct {
	root *Node[K]
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

func (t *Tree[K]) IsEmpty() bool { return t.root == nil }

func (t *Tree[K]) setRoot(n *Node[K]) {
	t.root = n
	if n != nil {
		n.parent = nil
	}
}

// Size counts the nodes with a full traversal.
func (t *Tree[K]) Size() int {
	return count(t.root)
}

func count[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

// Height of the tree; -1 when empty.
func (t *Tree[K]) Height() int {
	return heightOf(t.root)
}

// InOrder returns the keys in ascending order. Each call returns a fresh
// slice.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0)
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

func (t *Tree[K]) PreOrder() []K {
	keys := make([]K, 0)
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		keys = append(keys, n.key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

func (t *Tree[K]) PostOrder() []K {
	keys := make([]K, 0)
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		keys = append(keys, n.key)
	}
	walk(t.root)
	return keys
}

// LevelOrder returns the keys breadth first, left to right within a level.
func (t *Tree[K]) LevelOrder() []K {
	keys := make([]K, 0)
	if t.root == nil {
		return keys
	}
	queue := []*Node[K]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		keys = append(keys, n.key)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return keys
}

// Render draws the tree shape. Children are tagged L and R; label formats a
// key for display.
func (t *Tree[K]) Render(label func(K) string) string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(label(t.root.key))
	renderChildren(out, t.root, label)
	return out.String()
}

func renderChildren[K any](branch treeprint.Tree, n *Node[K], label func(K) string) {
	for _, child := range []struct {
		side string
		node *Node[K]
	}{{"L", n.left}, {"R", n.right}} {
		if child.node == nil {
			continue
		}
		if child.node.IsLeaf() {
			branch.AddMetaNode(child.side, label(child.node.key))
			continue
		}
		sub := branch.AddMetaBranch(child.side, label(child.node.key))
		renderChildren(sub, child.node, label)
	}
}

// CheckLinks verifies that every child points back to its parent, that the
// root has no parent and that cached heights and balances match the shape.
func (t *Tree[K]) CheckLinks() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has a parent", t.root.key)
	}
	_, err := checkLinks(t.root)
	return err
}

func checkLinks[K any](n *Node[K]) (int, error) {
	if n == nil {
		return -1, nil
	}
	for _, c := range []*Node[K]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("node %v: child %v does not point back to its parent", n.key, c.key)
		}
	}
	lh, err := checkLinks(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkLinks(n.right)
	if err != nil {
		return 0, err
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("node %v: cached height %d, actual %d", n.key, n.height, h)
	}
	if n.balance != rh-lh {
		return 0, fmt.Errorf("node %v: cached balance %d, actual %d", n.key, n.balance, rh-lh)
	}
	return h, nil
}
