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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var sampleHeader = []string{
	"ANO", "DIRETORIA", "MUNICIPIO", "CD_ESCOLA", "ESCOLA", "REDE", "ETAPA", "DS_PAIS", "Nº ALUNOS",
}

// GenerateOptions controls the sample dataset.
type GenerateOptions struct {
	Rows      int
	Seed      int64
	Delimiter rune
	Dirty     bool // mix in rows the loader must skip
}

// GenerateCSV writes a sample dataset in the layout the loader expects, with
// the country in column 7 and the student count in column 8.
func GenerateCSV(w io.Writer, opts GenerateOptions) error {
	if opts.Rows < 0 {
		return fmt.Errorf("row count must not be negative, got %d", opts.Rows)
	}
	faker := gofakeit.New(opts.Seed)

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter
	if err := writer.Write(sampleHeader); err != nil {
		return err
	}

	// a small pool so countries repeat and get merged
	pool := make([]string, 0, 40)
	for i := 0; i < cap(pool); i++ {
		pool = append(pool, faker.Country())
	}

	for i := 0; i < opts.Rows; i++ {
		country := faker.RandomString(pool)
		if faker.Number(1, 10) == 1 {
			country = strings.ToUpper(country)
		}
		students := strconv.Itoa(faker.Number(1, 25))
		if faker.Number(1, 5) == 1 {
			students = "1"
		}

		if opts.Dirty && faker.Number(1, 20) == 1 {
			switch faker.Number(1, 3) {
			case 1:
				country = ""
			case 2:
				students = "n/a"
			default:
				students = "-" + students
			}
		}

		record := []string{
			strconv.Itoa(faker.Number(2018, 2024)),
			faker.City(),
			faker.City(),
			faker.Numerify("######"),
			faker.Company(),
			faker.RandomString([]string{"ESTADUAL", "MUNICIPAL", "PRIVADA"}),
			faker.RandomString([]string{"INFANTIL", "FUNDAMENTAL", "MEDIO"}),
			country,
			students,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
