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

// Package questions holds the reports that can be asked of a nationality
// tree and a manager that runs them against several trees at once.
package questions

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/nationtree/nationality"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Question defines one report over the nationalities of a tree. Rows are
// always given in key order.
type Question interface {
	ID() string
	Title() string
	Usage() string
	Priority() int // Lower number = listed first
	Answer(rows []nationality.Nationality, req *Request) (*Answer, error)
}

// Answer is a rendered table plus a one line summary.
type Answer struct {
	Columns []string
	Rows    [][]string
	Summary string
}

// Equal reports whether two answers carry the same content.
func (a *Answer) Equal(b *Answer) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Summary == b.Summary &&
		slices.Equal(a.Columns, b.Columns) &&
		slices.EqualFunc(a.Rows, b.Rows, slices.Equal[[]string])
}

// Request represents the arguments passed to a question
type Request struct {
	Args     []string
	FullText string
}

// NewRequest creates a Request from already split arguments
func NewRequest(args []string) *Request {
	return &Request{Args: args, FullText: strings.Join(args, " ")}
}

// ParseRequest splits a free text line with shell quoting rules.
func ParseRequest(line string) (*Request, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", line, err)
	}
	return NewRequest(args), nil
}

// HasArg checks if the request has at least n arguments
func (r *Request) HasArg(n int) bool {
	return r != nil && len(r.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (r *Request) Arg(n int) string {
	if !r.HasArg(n + 1) {
		return ""
	}
	return r.Args[n]
}

// Int parses the nth argument, falling back to def when it is absent.
func (r *Request) Int(n int, def int) (int, error) {
	raw := r.Arg(n)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidArgument, raw)
	}
	return v, nil
}
