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

import (
	"cmp"
	"fmt"
)

// CompareFunc is a three-way comparison: negative when a < b, zero when equal,
// positive when a > b.
type CompareFunc[K any] func(a, b K) int

// MergeFunc combines the key already stored in the tree with an equal key
// being inserted. The result replaces the stored key and must compare equal
// to it.
type MergeFunc[K any] func(existing, incoming K) K

// Ordered is implemented by keys that know their own total order.
type Ordered[K any] interface {
	Compare(other K) int
}

// Mergeable keys can absorb an equal key on insert.
type Mergeable[K any] interface {
	Ordered[K]
	Merge(other K) K
}

// Index is the surface shared by the unbalanced and balanced variants.
type Index[K any] interface {
	Insert(key K) error
	Remove(key K) bool
	Search(key K) (K, bool)
	Size() int
	Height() int
	InOrder() []K
	PreOrder() []K
	Comparisons() uint64
	ResetComparisons()
	Render(label func(K) string) string
	Check() error
}

type Option[K any] func(*SearchTree[K])

// WithMerge enables merge-on-insert for equal keys.
func WithMerge[K any](merge MergeFunc[K]) Option[K] {
	return func(t *SearchTree[K]) {
		t.merge = merge
	}
}

// SearchTree is an unbalanced binary search tree. Every key comparison made
// by Insert, Search and Remove is counted.
type SearchTree[K any] struct {
	Tree[K]
	compare     CompareFunc[K]
	merge       MergeFunc[K]
	comparisons uint64

	// rebalance is applied to every subtree root on the way back up from a
	// structural edit. nil for the unbalanced variant.
	rebalance func(*Node[K]) *Node[K]
}

var _ Index[int] = (*SearchTree[int])(nil)

func NewSearchTree[K any](compare CompareFunc[K], opts ...Option[K]) *SearchTree[K] {
	t := &SearchTree[K]{compare: compare}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrderedSearchTree builds a tree over keys that order and merge
// themselves.
func NewOrderedSearchTree[K Mergeable[K]]() *SearchTree[K] {
	return NewSearchTree[K](orderOf[K], WithMerge[K](mergeOf[K]))
}

// NewNaturalSearchTree builds a tree over a primitive ordered type. Duplicate
// inserts fail with ErrMergeUnsupported unless WithMerge is given.
func NewNaturalSearchTree[K cmp.Ordered](opts ...Option[K]) *SearchTree[K] {
	return NewSearchTree[K](cmp.Compare[K], opts...)
}

func orderOf[K Mergeable[K]](a, b K) int { return a.Compare(b) }

func mergeOf[K Mergeable[K]](existing, incoming K) K { return existing.Merge(incoming) }

func (t *SearchTree[K]) cmp(a, b K) int {
	t.comparisons++
	return t.compare(a, b)
}

// Comparisons returns the number of key comparisons since the last reset.
func (t *SearchTree[K]) Comparisons() uint64 { return t.comparisons }

func (t *SearchTree[K]) ResetComparisons() { t.comparisons = 0 }

// Search returns the stored key equal to key.
func (t *SearchTree[K]) Search(key K) (K, bool) {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.key, true
		}
	}
	var zero K
	return zero, false
}

// Contains reports whether an equal key is stored.
func (t *SearchTree[K]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Insert adds key, or merges it into an equal key already present. Without a
// merge function a duplicate is rejected and the tree is left unchanged.
func (t *SearchTree[K]) Insert(key K) error {
	root, err := t.insert(t.root, key)
	if err != nil {
		return err
	}
	t.setRoot(root)
	return nil
}

func (t *SearchTree[K]) insert(n *Node[K], key K) (*Node[K], error) {
	if n == nil {
		return newNode(key), nil
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		child, err := t.insert(n.left, key)
		if err != nil {
			return n, err
		}
		n.setLeft(child)
	case c > 0:
		child, err := t.insert(n.right, key)
		if err != nil {
			return n, err
		}
		n.setRight(child)
	default:
		if t.merge == nil {
			return n, fmt.Errorf("insert %v: %w", key, ErrMergeUnsupported)
		}
		n.setKey(t.merge(n.key, key))
		return n, nil
	}
	return t.settle(n), nil
}

// Remove deletes the key equal to key and reports whether one was found.
func (t *SearchTree[K]) Remove(key K) bool {
	root, removed := t.remove(t.root, key)
	if removed {
		t.setRoot(root)
	}
	return removed
}

func (t *SearchTree[K]) remove(n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		var child *Node[K]
		if child, removed = t.remove(n.left, key); !removed {
			return n, false
		}
		n.setLeft(child)
	case c > 0:
		var child *Node[K]
		if child, removed = t.remove(n.right, key); !removed {
			return n, false
		}
		n.setRight(child)
	default:
		return t.unlink(n), true
	}
	return t.settle(n), true
}

// unlink removes n from its subtree and returns the subtree's new root. A
// node with two children takes its in-order predecessor's key, and the
// predecessor is removed from the left subtree instead.
func (t *SearchTree[K]) unlink(n *Node[K]) *Node[K] {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	pred := maxNode(n.left)
	n.setKey(pred.key)
	child, _ := t.remove(n.left, pred.key)
	n.setLeft(child)
	return t.settle(n)
}

func (t *SearchTree[K]) settle(n *Node[K]) *Node[K] {
	if t.rebalance == nil {
		return n
	}
	return t.rebalance(n)
}

// Min returns the smallest key.
func (t *SearchTree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minNode(t.root).key, true
}

// Max returns the largest key.
func (t *SearchTree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return maxNode(t.root).key, true
}

func minNode[K any](n *Node[K]) *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *Node[K]) *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// CheckOrder verifies strict ascending order of the in-order sequence.
func (t *SearchTree[K]) CheckOrder() error {
	keys := t.InOrder()
	for i := 1; i < len(keys); i++ {
		if t.compare(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("keys out of order at position %d: %v then %v", i, keys[i-1], keys[i])
		}
	}
	return nil
}

// Check runs every structural verification for the unbalanced variant.
func (t *SearchTree[K]) Check() error {
	if err := t.CheckLinks(); err != nil {
		return err
	}
	return t.CheckOrder()
}
