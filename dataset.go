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
	"log"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/nationtree/nationality"
	"github.com/cybrota/nationtree/questions"
	"github.com/cybrota/nationtree/tree"
)

const (
	variantBST = "BST"
	variantAVL = "AVL"
)

type variant struct {
	name  string
	index tree.Index[nationality.Nationality]
}

// Dataset keeps the same nationalities in an unbalanced and a balanced tree
// so every query can be compared across both. It is owned by a single
// goroutine.
type Dataset struct {
	variants  []variant
	questions *questions.Manager
	answers   *cache.Cache
	stats     LoadStats
}

// LookupResult is the outcome of searching one tree.
type LookupResult struct {
	Variant     string
	Found       bool
	Value       nationality.Nationality
	Comparisons uint64
	Elapsed     time.Duration
}

// TreeShape describes one tree.
type TreeShape struct {
	Variant     string
	Size        int
	Height      int
	Comparisons uint64
}

func NewDataset(topN int) *Dataset {
	return &Dataset{
		variants: []variant{
			{name: variantBST, index: tree.NewOrderedSearchTree[nationality.Nationality]()},
			{name: variantAVL, index: tree.NewOrderedBalancedTree[nationality.Nationality]()},
		},
		questions: questions.NewManager(topN),
		answers:   NewAnswerCache(),
	}
}

// OpenDataset loads the CSV at path into both trees.
func OpenDataset(cfg *Config, path string) (*Dataset, error) {
	rows, stats, err := LoadCSV(path, cfg.Dataset, cfg.UI.ShowProgress)
	if err != nil {
		return nil, err
	}
	if stats.Skipped > 0 {
		log.Printf("Skipped %d of %d rows in %s", stats.Skipped, stats.Rows, path)
	}

	d := NewDataset(cfg.Report.TopN)
	d.stats = stats
	if err := d.Add(rows...); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) Stats() LoadStats { return d.stats }

func (d *Dataset) Questions() *questions.Manager { return d.questions }

// Add inserts every row into both trees, merging repeated countries.
func (d *Dataset) Add(rows ...nationality.Nationality) error {
	if len(rows) == 0 {
		return nil
	}
	d.answers.Flush()
	for _, v := range d.variants {
		for _, row := range rows {
			if err := v.index.Insert(row); err != nil {
				return fmt.Errorf("%s insert %q: %w", v.name, row.Country, err)
			}
		}
	}
	return nil
}

// Remove deletes country from both trees and reports whether it was present.
func (d *Dataset) Remove(country string) bool {
	probe := nationality.Probe(country)
	removed := false
	for _, v := range d.variants {
		if v.index.Remove(probe) {
			removed = true
		}
	}
	if removed {
		d.answers.Flush()
	}
	return removed
}

// Lookup searches every tree for country.
func (d *Dataset) Lookup(country string) []LookupResult {
	probe := nationality.Probe(country)
	results := make([]LookupResult, 0, len(d.variants))
	for _, v := range d.variants {
		before := v.index.Comparisons()
		start := time.Now()
		value, found := v.index.Search(probe)
		elapsed := time.Since(start)

		results = append(results, LookupResult{
			Variant:     v.name,
			Found:       found,
			Value:       value,
			Comparisons: v.index.Comparisons() - before,
			Elapsed:     elapsed,
		})
	}
	return results
}

func (d *Dataset) Shape() []TreeShape {
	shapes := make([]TreeShape, 0, len(d.variants))
	for _, v := range d.variants {
		shapes = append(shapes, TreeShape{
			Variant:     v.name,
			Size:        v.index.Size(),
			Height:      v.index.Height(),
			Comparisons: v.index.Comparisons(),
		})
	}
	return shapes
}

// Ask runs a question against both trees. Results are cached until the next
// Add or Remove.
func (d *Dataset) Ask(id string, req *questions.Request) (*questions.Result, error) {
	q, err := d.questions.Find(id)
	if err != nil {
		return nil, err
	}
	id = q.ID()
	key := answerKey(id, req)
	if res, ok := GetAnswer(d.answers, key); ok {
		return res, nil
	}
	res, err := d.questions.Ask(id, d.Sources(), req)
	if err != nil {
		return nil, err
	}
	CacheAnswer(d.answers, key, res)
	return res, nil
}

func (d *Dataset) Sources() []questions.Source {
	sources := make([]questions.Source, 0, len(d.variants))
	for _, v := range d.variants {
		sources = append(sources, questions.Source{Name: v.name, Tree: v.index})
	}
	return sources
}

// Tree returns the tree for a variant name (case-insensitive).
func (d *Dataset) Tree(name string) (tree.Index[nationality.Nationality], error) {
	for _, v := range d.variants {
		if strings.EqualFold(v.name, name) {
			return v.index, nil
		}
	}
	return nil, fmt.Errorf("unknown tree variant %q (want bst or avl)", name)
}

// Check verifies the invariants of every tree.
func (d *Dataset) Check() error {
	for _, v := range d.variants {
		if err := v.index.Check(); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	return nil
}
