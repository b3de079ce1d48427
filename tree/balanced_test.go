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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotations(t *testing.T) {
	testCases := []struct {
		Name   string
		Keys   []int
		Levels []int
	}{
		{Name: "Right Heavy", Keys: []int{10, 20, 30}, Levels: []int{20, 10, 30}},
		{Name: "Left Heavy", Keys: []int{30, 20, 10}, Levels: []int{20, 10, 30}},
		{Name: "Left Right", Keys: []int{30, 10, 20}, Levels: []int{20, 10, 30}},
		{Name: "Right Left", Keys: []int{10, 30, 20}, Levels: []int{20, 10, 30}},
		{Name: "Deep Left Right", Keys: []int{50, 20, 70, 10, 30, 25}, Levels: []int{30, 20, 50, 10, 25, 70}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tr := NewNaturalBalancedTree[int]()
			for _, k := range tc.Keys {
				require.NoError(t, tr.Insert(k))
			}
			assert.Equal(t, tc.Levels, tr.LevelOrder())
			assert.Equal(t, tc.Levels[0], tr.Root().Key())
			assert.Nil(t, tr.Root().Parent())
			require.NoError(t, tr.Check())
		})
	}
}

func TestUnbalancedVariantDoesNotRotate(t *testing.T) {
	tr := NewNaturalSearchTree[int]()
	for _, k := range []int{10, 20, 30} {
		require.NoError(t, tr.Insert(k))
	}
	assert.Equal(t, 10, tr.Root().Key())
	assert.Equal(t, 2, tr.Height())
	assert.Equal(t, 2, tr.Root().Balance())
	require.NoError(t, tr.Check())
}

func TestRemoveRebalances(t *testing.T) {
	tr := NewNaturalBalancedTree[int]()
	for _, k := range []int{20, 10, 30, 40} {
		require.NoError(t, tr.Insert(k))
	}
	require.True(t, tr.Remove(10))
	assert.Equal(t, 30, tr.Root().Key())
	assert.Equal(t, []int{30, 20, 40}, tr.LevelOrder())
	require.NoError(t, tr.Check())
}

func TestNodeQueries(t *testing.T) {
	tr := NewNaturalBalancedTree[int]()
	for _, k := range []int{4, 2, 6, 1} {
		require.NoError(t, tr.Insert(k))
	}
	root := tr.Root()
	require.NotNil(t, root)

	assert.True(t, root.IsRoot())
	assert.Equal(t, 2, root.Degree())
	assert.Equal(t, 2, root.Height())
	assert.Equal(t, -1, root.Balance())
	assert.Equal(t, 0, root.Depth())

	two := root.Left()
	assert.Equal(t, 2, two.Key())
	assert.Equal(t, 1, two.Degree())
	assert.Equal(t, 1, two.Depth())
	assert.Equal(t, -1, two.Balance())
	assert.Same(t, root, two.Parent())

	one := two.Left()
	assert.True(t, one.IsLeaf())
	assert.Equal(t, 0, one.Height())
	assert.Equal(t, 2, one.Depth())

	six := root.Right()
	assert.Equal(t, 0, six.Degree())
	assert.Equal(t, 0, six.Balance())
}

func TestRotationGuards(t *testing.T) {
	leaf := newNode(1)
	assert.Same(t, leaf, rotateLeft(leaf))
	assert.Same(t, leaf, rotateRight(leaf))
	assert.Same(t, leaf, rotateLeftRight(leaf))
	assert.Same(t, leaf, rotateRightLeft(leaf))
	assert.Nil(t, rotateLeft[int](nil))
}

func TestCheckDetectsCorruption(t *testing.T) {
	tr := NewNaturalBalancedTree[int]()
	for _, k := range []int{2, 1, 3} {
		require.NoError(t, tr.Insert(k))
	}
	tr.Root().left.height = 5
	assert.Error(t, tr.CheckLinks())
	tr.Root().left.height = 0

	tr.Root().left.key = 9
	assert.Error(t, tr.CheckOrder())
	tr.Root().left.key = 1

	tr.Root().right.parent = nil
	assert.Error(t, tr.Check())
}

func BenchmarkBalancedInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := NewNaturalBalancedTree[int]()
		for k := 0; k < 1000; k++ {
			_ = tr.Insert(k)
		}
	}
}

func BenchmarkSearchInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := NewNaturalSearchTree[int]()
		for k := 0; k < 1000; k++ {
			_ = tr.Insert((k * 7919) % 1000)
		}
	}
}
