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

package tree

// Node is a single cell of a binary tree. It owns its children and keeps a
// back-reference to its parent, which is used to re-link rotated subtrees and
// to compute depth. Height and balance are cached and refreshed whenever a
// child link is written.
type Node[K any] struct {
	key     K
	left    *Node[K]
	right   *Node[K]
	parent  *Node[K]
	height  int
	balance int
}

func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key}
}

// Key returns the key held by the node.
func (n *Node[K]) Key() K { return n.key }

// Left returns the left child or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Parent returns the parent or nil for a root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

func (n *Node[K]) IsLeaf() bool { return n.left == nil && n.right == nil }

func (n *Node[K]) IsRoot() bool { return n.parent == nil }

// Degree is the number of children (0, 1 or 2).
func (n *Node[K]) Degree() int {
	d := 0
	if n.left != nil {
		d++
	}
	if n.right != nil {
		d++
	}
	return d
}

// Depth is the number of edges between the node and the root.
func (n *Node[K]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Height is the length of the longest downward path to a leaf. A leaf has
// height 0.
func (n *Node[K]) Height() int { return n.height }

// Balance is height(right) - height(left), counting a missing child as -1.
func (n *Node[K]) Balance() int { return n.balance }

func (n *Node[K]) setKey(key K) { n.key = key }

func (n *Node[K]) setLeft(child *Node[K]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
	n.refresh()
}

func (n *Node[K]) setRight(child *Node[K]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
	n.refresh()
}

// refresh recomputes the cached height and balance from the children's
// cached values. Ancestors are not touched.
func (n *Node[K]) refresh() {
	lh, rh := heightOf(n.left), heightOf(n.right)
	n.height = max(lh, rh) + 1
	n.balance = rh - lh
}

func heightOf[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func balanceOf[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.balance
}
