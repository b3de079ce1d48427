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

// BalancedTree is an AVL tree: a SearchTree whose inserts and removes
// rebalance every subtree on the way back up, keeping the heights of sibling
// subtrees within one of each other.
type BalancedTree[K any] struct {
	*SearchTree[K]
}

var _ Index[int] = (*BalancedTree[int])(nil)

func NewBalancedTree[K any](compare CompareFunc[K], opts ...Option[K]) *BalancedTree[K] {
	t := NewSearchTree[K](compare, opts...)
	t.rebalance = rebalance[K]
	return &BalancedTree[K]{SearchTree: t}
}

// NewOrderedBalancedTree builds an AVL tree over keys that order and merge
// themselves.
func NewOrderedBalancedTree[K Mergeable[K]]() *BalancedTree[K] {
	return NewBalancedTree[K](orderOf[K], WithMerge[K](mergeOf[K]))
}

func NewNaturalBalancedTree[K cmp.Ordered](opts ...Option[K]) *BalancedTree[K] {
	return NewBalancedTree[K](cmp.Compare[K], opts...)
}

// rebalance restores the AVL property at the subtree rooted at n, assuming
// both children are already balanced, and returns the new subtree root.
func rebalance[K any](n *Node[K]) *Node[K] {
	switch b := n.balance; {
	case b > 1:
		if balanceOf(n.right) >= 0 {
			return rotateLeft(n)
		}
		return rotateRightLeft(n)
	case b < -1:
		if balanceOf(n.left) <= 0 {
			return rotateRight(n)
		}
		return rotateLeftRight(n)
	}
	return n
}

// rotateLeft lifts the right child of p into p's place.
func rotateLeft[K any](p *Node[K]) *Node[K] {
	if p == nil || p.right == nil {
		return p
	}
	q := p.right
	q.parent = p.parent
	p.setRight(q.left)
	q.setLeft(p)
	return q
}

// rotateRight lifts the left child of p into p's place.
func rotateRight[K any](p *Node[K]) *Node[K] {
	if p == nil || p.left == nil {
		return p
	}
	q := p.left
	q.parent = p.parent
	p.setLeft(q.right)
	q.setRight(p)
	return q
}

func rotateLeftRight[K any](p *Node[K]) *Node[K] {
	if p == nil || p.left == nil {
		return p
	}
	p.setLeft(rotateLeft(p.left))
	return rotateRight(p)
}

func rotateRightLeft[K any](p *Node[K]) *Node[K] {
	if p == nil || p.right == nil {
		return p
	}
	p.setRight(rotateRight(p.right))
	return rotateLeft(p)
}

// CheckBalance verifies that no node is more than one level out of balance.
func (t *BalancedTree[K]) CheckBalance() error {
	var walk func(n *Node[K]) error
	walk = func(n *Node[K]) error {
		if n == nil {
			return nil
		}
		if n.balance < -1 || n.balance > 1 {
			return fmt.Errorf("node %v out of balance: %d", n.key, n.balance)
		}
		if err := walk(n.left); err != nil {
			return err
		}
		return walk(n.right)
	}
	return walk(t.root)
}

// Check runs the search tree checks plus the balance check.
func (t *BalancedTree[K]) Check() error {
	if err := t.SearchTree.Check(); err != nil {
		return err
	}
	return t.CheckBalance()
}
