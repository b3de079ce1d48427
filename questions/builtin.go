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
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/cybrota/nationtree/nationality"
)

var countryColumns = []string{"Country", "Students"}

func countryRows(rows []nationality.Nationality) [][]string {
	return lo.Map(rows, func(n nationality.Nationality, _ int) []string {
		return []string{n.Country, strconv.Itoa(n.Students)}
	})
}

// TopQuestion lists the countries with the most students.
type TopQuestion struct {
	DefaultN int
}

func (q *TopQuestion) ID() string    { return "top" }
func (q *TopQuestion) Title() string { return "Top countries by students" }
func (q *TopQuestion) Usage() string { return "top [n]" }
func (q *TopQuestion) Priority() int { return 1 }

func (q *TopQuestion) Answer(rows []nationality.Nationality, req *Request) (*Answer, error) {
	n, err := req.Int(0, q.DefaultN)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidArgument, n)
	}

	ranked := slices.Clone(rows)
	// stable: equal counts stay in name order
	slices.SortStableFunc(ranked, func(a, b nationality.Nationality) int {
		return cmp.Compare(b.Students, a.Students)
	})
	ranked = ranked[:min(n, len(ranked))]

	return &Answer{
		Columns: append([]string{"#"}, countryColumns...),
		Rows: lo.Map(ranked, func(r nationality.Nationality, i int) []string {
			return []string{strconv.Itoa(i + 1), r.Country, strconv.Itoa(r.Students)}
		}),
		Summary: fmt.Sprintf("Top %d of %d countries", len(ranked), len(rows)),
	}, nil
}

// SingleQuestion lists the countries that sent exactly one student.
type SingleQuestion struct{}

func (q *SingleQuestion) ID() string    { return "single" }
func (q *SingleQuestion) Title() string { return "Countries with exactly one student" }
func (q *SingleQuestion) Usage() string { return "single" }
func (q *SingleQuestion) Priority() int { return 2 }

func (q *SingleQuestion) Answer(rows []nationality.Nationality, _ *Request) (*Answer, error) {
	single := lo.Filter(rows, func(n nationality.Nationality, _ int) bool {
		return n.Students == 1
	})
	return &Answer{
		Columns: countryColumns,
		Rows:    countryRows(single),
		Summary: fmt.Sprintf("Total countries with exactly 1 student: %d", len(single)),
	}, nil
}

// RangeQuestion lists the countries whose student count falls in [min, max].
type RangeQuestion struct{}

func (q *RangeQuestion) ID() string    { return "range" }
func (q *RangeQuestion) Title() string { return "Countries within a student range" }
func (q *RangeQuestion) Usage() string { return "range <min> <max>" }
func (q *RangeQuestion) Priority() int { return 3 }

func (q *RangeQuestion) Answer(rows []nationality.Nationality, req *Request) (*Answer, error) {
	if !req.HasArg(2) {
		return nil, fmt.Errorf("%w: usage: %s", ErrInvalidArgument, q.Usage())
	}
	low, err := req.Int(0, 0)
	if err != nil {
		return nil, err
	}
	high, err := req.Int(1, 0)
	if err != nil {
		return nil, err
	}
	if low <= 0 {
		return nil, fmt.Errorf("%w: minimum must be greater than zero", ErrInvalidArgument)
	}
	if high < low {
		return nil, fmt.Errorf("%w: maximum must be greater than or equal to minimum", ErrInvalidArgument)
	}

	within := lo.Filter(rows, func(n nationality.Nationality, _ int) bool {
		return n.Students >= low && n.Students <= high
	})
	return &Answer{
		Columns: countryColumns,
		Rows:    countryRows(within),
		Summary: fmt.Sprintf("Total countries between %d and %d students: %d", low, high, len(within)),
	}, nil
}

// MaxQuestion finds the country with the most students. The first country in
// name order wins a tie.
type MaxQuestion struct{}

func (q *MaxQuestion) ID() string    { return "max" }
func (q *MaxQuestion) Title() string { return "Country with the most students" }
func (q *MaxQuestion) Usage() string { return "max" }
func (q *MaxQuestion) Priority() int { return 4 }

func (q *MaxQuestion) Answer(rows []nationality.Nationality, _ *Request) (*Answer, error) {
	if len(rows) == 0 {
		return &Answer{Columns: countryColumns, Summary: "No data available"}, nil
	}
	top := lo.MaxBy(rows, func(a, b nationality.Nationality) bool {
		return a.Students > b.Students
	})
	return &Answer{
		Columns: countryColumns,
		Rows:    countryRows([]nationality.Nationality{top}),
		Summary: fmt.Sprintf("%s has the most students: %d", top.Country, top.Students),
	}, nil
}

// TotalQuestion sums the students over every country.
type TotalQuestion struct{}

func (q *TotalQuestion) ID() string    { return "total" }
func (q *TotalQuestion) Title() string { return "Total students and nationalities" }
func (q *TotalQuestion) Usage() string { return "total" }
func (q *TotalQuestion) Priority() int { return 5 }

func (q *TotalQuestion) Answer(rows []nationality.Nationality, _ *Request) (*Answer, error) {
	total := lo.SumBy(rows, func(n nationality.Nationality) int { return n.Students })
	return &Answer{
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total students", strconv.Itoa(total)},
			{"Distinct nationalities", strconv.Itoa(len(rows))},
		},
		Summary: fmt.Sprintf("%d students from %d nationalities", total, len(rows)),
	}, nil
}

// ListQuestion shows the first countries in alphabetical order.
type ListQuestion struct {
	DefaultN int
}

func (q *ListQuestion) ID() string    { return "list" }
func (q *ListQuestion) Title() string { return "First countries alphabetically" }
func (q *ListQuestion) Usage() string { return "list [n]" }
func (q *ListQuestion) Priority() int { return 6 }

func (q *ListQuestion) Answer(rows []nationality.Nationality, req *Request) (*Answer, error) {
	n, err := req.Int(0, q.DefaultN)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidArgument, n)
	}
	first := lo.Subset(rows, 0, uint(n))
	return &Answer{
		Columns: countryColumns,
		Rows:    countryRows(first),
		Summary: fmt.Sprintf("First %d of %d nationalities", len(first), len(rows)),
	}, nil
}
