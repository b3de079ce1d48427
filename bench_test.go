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

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBenchKeys(t *testing.T) {
	for _, order := range []string{orderRandom, orderAscending} {
		t.Run(order, func(t *testing.T) {
			keys, err := benchKeys(2000, order, 42)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(keys) != 2000 {
				t.Fatalf("Expected 2000 keys, got %d", len(keys))
			}
			seen := map[int]bool{}
			for _, k := range keys {
				if seen[k] {
					t.Fatalf("Duplicate key %d", k)
				}
				seen[k] = true
			}
		})
	}

	a, _ := benchKeys(100, orderRandom, 7)
	b, _ := benchKeys(100, orderRandom, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected the same seed to produce the same keys")
		}
	}

	if _, err := benchKeys(10, "zigzag", 1); err == nil {
		t.Errorf("Expected unknown order to fail")
	}
}

func TestRunBenchmark(t *testing.T) {
	keys, _ := benchKeys(512, orderAscending, 0)
	results := RunBenchmark(keys, false)
	if len(results) != 2 {
		t.Fatalf("Expected results for both trees, got %d", len(results))
	}
	bst, avl := results[0], results[1]
	if bst.Variant != variantBST || avl.Variant != variantAVL {
		t.Fatalf("Unexpected variant order: %s, %s", bst.Variant, avl.Variant)
	}

	// ascending keys degrade the unbalanced tree into a chain
	if bst.Height != 511 {
		t.Errorf("Expected BST height 511, got %d", bst.Height)
	}
	if avl.Height > 10 {
		t.Errorf("Expected AVL height at most 10, got %d", avl.Height)
	}
	if bst.Insert.Comparisons != 512*511/2 {
		t.Errorf("Expected %d BST insert comparisons, got %d", 512*511/2, bst.Insert.Comparisons)
	}
	if avl.Search.Comparisons >= bst.Search.Comparisons {
		t.Errorf("Expected AVL searches to be cheaper: %d vs %d", avl.Search.Comparisons, bst.Search.Comparisons)
	}
	if avl.Remove.Comparisons == 0 || bst.Remove.Comparisons == 0 {
		t.Errorf("Expected removals to be counted")
	}

	var out bytes.Buffer
	renderBenchmark(&out, 512, orderAscending, results)
	for _, want := range []string{"BST", "AVL", "insert", "search", "remove"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected benchmark table to mention %q", want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		In   time.Duration
		Want string
	}{
		{In: 999 * time.Nanosecond, Want: "999 ns"},
		{In: 1000 * time.Nanosecond, Want: "1000 ns"},
		{In: 1500 * time.Nanosecond, Want: "1.500 µs"},
		{In: 2500 * time.Microsecond, Want: "2.500 ms"},
	}
	for _, tc := range testCases {
		if got := formatDuration(tc.In); got != tc.Want {
			t.Errorf("formatDuration(%v) = %q; want %q", tc.In, got, tc.Want)
		}
	}
}
