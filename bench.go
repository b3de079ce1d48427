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
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/nationtree/tree"
)

const (
	orderRandom    = "random"
	orderAscending = "ascending"
)

// PhaseResult is the cost of one benchmark phase on one tree.
type PhaseResult struct {
	Elapsed     time.Duration
	Comparisons uint64
}

// BenchResult holds the insert, search and remove costs of one tree.
type BenchResult struct {
	Variant string
	Insert  PhaseResult
	Search  PhaseResult
	Remove  PhaseResult
	Height  int
}

// benchKeys returns n distinct keys. Random keys are drawn from [0, 10n) and
// repeats are rejected through a bloom filter, so a false positive only costs
// an extra draw.
func benchKeys(n int, order string, seed int64) ([]int, error) {
	keys := make([]int, 0, n)
	switch order {
	case orderAscending:
		for i := 0; i < n; i++ {
			keys = append(keys, i)
		}
	case orderRandom:
		rng := rand.New(rand.NewSource(seed))
		seen := bloom.NewWithEstimates(uint(max(n, 1)), 0.001)
		for len(keys) < n {
			k := rng.Intn(10 * n)
			if seen.TestAndAddString(strconv.Itoa(k)) {
				continue
			}
			keys = append(keys, k)
		}
	default:
		return nil, fmt.Errorf("unknown key order %q", order)
	}
	return keys, nil
}

// measure resets the comparison counter, runs op over keys and reports the
// elapsed time and comparisons.
func measure(idx tree.Index[int], keys []int, op func(int)) PhaseResult {
	idx.ResetComparisons()
	start := time.Now()
	for _, k := range keys {
		op(k)
	}
	return PhaseResult{Elapsed: time.Since(start), Comparisons: idx.Comparisons()}
}

// RunBenchmark inserts every key, searches every key and removes the first
// half, once per tree variant.
func RunBenchmark(keys []int, showProgress bool) []BenchResult {
	variants := []struct {
		name  string
		index tree.Index[int]
	}{
		{variantBST, tree.NewNaturalSearchTree[int]()},
		{variantAVL, tree.NewNaturalBalancedTree[int]()},
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(variants)*3,
			progressbar.OptionSetDescription("⏱️  Benchmarking..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	step := func(desc string) {
		if bar != nil {
			bar.Describe(desc)
			bar.Add(1)
		}
	}

	results := make([]BenchResult, 0, len(variants))
	for _, v := range variants {
		res := BenchResult{Variant: v.name}

		res.Insert = measure(v.index, keys, func(k int) { _ = v.index.Insert(k) })
		res.Height = v.index.Height()
		step(v.name + " insert")

		res.Search = measure(v.index, keys, func(k int) { v.index.Search(k) })
		step(v.name + " search")

		res.Remove = measure(v.index, keys[:len(keys)/2], func(k int) { v.index.Remove(k) })
		step(v.name + " remove")

		results = append(results, res)
	}
	if bar != nil {
		bar.Finish()
	}
	return results
}

func renderBenchmark(out io.Writer, n int, order string, results []BenchResult) {
	t := newTable(out, fmt.Sprintf("Benchmark: %d %s keys", n, order))
	t.AppendHeader(table.Row{"Tree", "Height", "Operation", "Time", "Comparisons"})
	for _, r := range results {
		for _, phase := range []struct {
			name string
			p    PhaseResult
		}{{"insert", r.Insert}, {"search", r.Search}, {"remove", r.Remove}} {
			t.AppendRow(table.Row{r.Variant, r.Height, phase.name, formatDuration(phase.p.Elapsed), phase.p.Comparisons})
		}
		t.AppendSeparator()
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}
