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

package nationality

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/nationtree/tree"
)

func TestNewTrimsAndFolds(t *testing.T) {
	n := New("  Brasil ", 3)
	assert.Equal(t, "Brasil", n.Country)
	assert.Equal(t, 3, n.Students)
	assert.True(t, n.Equal(New("BRASIL", 1)))
	assert.True(t, New("Straße", 0).Equal(New("STRASSE", 0)))
}

func TestNewFromManyGoroutines(t *testing.T) {
	names := []string{"Straße", "Angola", "BRASIL", "Perú", "Côte d'Ivoire"}
	want := make([]string, len(names))
	for i, name := range names {
		want[i] = New(name, 1).Identity()
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 200; round++ {
				i := round % len(names)
				assert.Equal(t, want[i], New(names[i], round).Identity())
			}
		}()
	}
	wg.Wait()
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		Name string
		A, B string
		Want int
	}{
		{Name: "Equal Ignoring Case", A: "angola", B: "Angola", Want: 0},
		{Name: "Less", A: "Angola", B: "brasil", Want: -1},
		{Name: "Greater", A: "Peru", B: "chile", Want: 1},
		{Name: "Surrounding Space", A: " Peru", B: "peru ", Want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, New(tc.A, 0).Compare(New(tc.B, 0)))
		})
	}
}

func TestZeroValueIdentity(t *testing.T) {
	n := Nationality{Country: " Chile"}
	assert.Equal(t, 0, n.Compare(Probe("chile")))
}

func TestMerge(t *testing.T) {
	base := New("Angola", 3)
	assert.Equal(t, 7, base.Merge(New("angola", 4)).Students)
	assert.Equal(t, 3, base.Merge(New("angola", 0)).Students)
	assert.Equal(t, 3, base.Merge(New("angola", -2)).Students)
	assert.Equal(t, "Angola", base.Merge(New("ANGOLA", 1)).Country)
}

func TestInTree(t *testing.T) {
	tr := tree.NewOrderedBalancedTree[Nationality]()
	for _, n := range []Nationality{New("Peru", 2), New("angola", 3), New("PERU", 5), New("Chile", 1)} {
		require.NoError(t, tr.Insert(n))
	}
	assert.Equal(t, 3, tr.Size())

	got, found := tr.Search(Probe("peru"))
	require.True(t, found)
	assert.Equal(t, 7, got.Students)
	assert.Equal(t, "Peru", got.Country)

	countries := []string{}
	for _, n := range tr.InOrder() {
		countries = append(countries, n.Country)
	}
	assert.Equal(t, []string{"angola", "Chile", "Peru"}, countries)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Nationality: Peru, Total students: 2", New("Peru", 2).String())
	assert.Equal(t, "Peru (2)", Label(New("Peru", 2)))
}
