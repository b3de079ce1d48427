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

// Package nationality defines the key stored in the student trees: a country
// identity with an accumulated student count.
package nationality

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the case-folded form of country. A Caser keeps state, so
// each call builds its own and values can be created from any goroutine.
func fold(country string) string {
	return cases.Fold().String(country)
}

// Nationality is a country and the number of foreign students from it. Two
// values are the same nationality when their trimmed country names match
// without regard to case.
type Nationality struct {
	Country  string
	Students int
	id       string
}

// New trims the country name and records its case-folded identity.
func New(country string, students int) Nationality {
	country = strings.TrimSpace(country)
	return Nationality{
		Country:  country,
		Students: students,
		id:       fold(country),
	}
}

// Probe builds a lookup key for country that carries no students.
func Probe(country string) Nationality {
	return New(country, 0)
}

// Identity is the case-folded name used for ordering.
func (n Nationality) Identity() string {
	if n.id == "" && n.Country != "" {
		return fold(strings.TrimSpace(n.Country))
	}
	return n.id
}

func (n Nationality) Compare(other Nationality) int {
	return strings.Compare(n.Identity(), other.Identity())
}

// Merge adds other's students to n. Non-positive counts are ignored.
func (n Nationality) Merge(other Nationality) Nationality {
	if other.Students > 0 {
		n.Students += other.Students
	}
	return n
}

func (n Nationality) Equal(other Nationality) bool {
	return n.Compare(other) == 0
}

func (n Nationality) String() string {
	return fmt.Sprintf("Nationality: %s, Total students: %d", n.Country, n.Students)
}

// Label is the short form used when drawing trees.
func Label(n Nationality) string {
	return fmt.Sprintf("%s (%d)", n.Country, n.Students)
}
