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

package questions

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/nationtree/nationality"
)

// Lister is anything that can list nationalities in key order.
type Lister interface {
	InOrder() []nationality.Nationality
}

// Source is a named tree a question is asked of.
type Source struct {
	Name string
	Tree Lister
}

// Timing is how long one source took to traverse and answer.
type Timing struct {
	Source  string
	Elapsed time.Duration
}

// Result is the answer to a question asked of every source.
type Result struct {
	Question   Question
	Answer     *Answer
	Timings    []Timing
	Consistent bool // every source produced the same answer
	Cached     bool // Timings come from an earlier run
}

// Manager manages the registered questions
type Manager struct {
	questions []Question
}

// NewManager creates a manager with all built-in questions. topN is the
// default row count for the top and list questions.
func NewManager(topN int) *Manager {
	m := &Manager{}

	m.Register(&TopQuestion{DefaultN: topN})
	m.Register(&SingleQuestion{})
	m.Register(&RangeQuestion{})
	m.Register(&MaxQuestion{})
	m.Register(&TotalQuestion{})
	m.Register(&ListQuestion{DefaultN: topN})

	return m
}

// Register registers a new question
func (m *Manager) Register(q Question) {
	m.questions = append(m.questions, q)
	slices.SortStableFunc(m.questions, func(a, b Question) int {
		return a.Priority() - b.Priority()
	})
}

// Questions returns the registered questions in priority order.
func (m *Manager) Questions() []Question {
	return slices.Clone(m.questions)
}

// Find looks a question up by ID, or by its 1-based position in the list.
func (m *Manager) Find(id string) (Question, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, q := range m.questions {
		if q.ID() == id {
			return q, nil
		}
	}
	if pos, err := strconv.Atoi(id); err == nil && pos >= 1 && pos <= len(m.questions) {
		return m.questions[pos-1], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
}

// Ask runs the question against every source. Each source is timed from the
// start of its traversal to the end of its answer. The first source's answer
// is returned.
func (m *Manager) Ask(id string, sources []Source, req *Request) (*Result, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources to ask %q", id)
	}
	q, err := m.Find(id)
	if err != nil {
		return nil, err
	}

	res := &Result{Question: q, Consistent: true}
	for _, src := range sources {
		start := time.Now()
		answer, err := q.Answer(src.Tree.InOrder(), req)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", q.ID(), src.Name, err)
		}

		res.Timings = append(res.Timings, Timing{Source: src.Name, Elapsed: elapsed})
		if res.Answer == nil {
			res.Answer = answer
		} else if !res.Answer.Equal(answer) {
			res.Consistent = false
		}
	}
	return res, nil
}
