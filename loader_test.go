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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

const sampleCSVHeader = "\uFEFFANO;DIRETORIA;MUNICIPIO;CD_ESCOLA;ESCOLA;REDE;ETAPA;DS_PAIS;Nº ALUNOS\n"

func csvRow(country, students string) string {
	return "2023;Norte;Campinas;123;Escola;ESTADUAL;MEDIO;" + country + ";" + students + "\n"
}

func TestReadNationalities(t *testing.T) {
	testCases := []struct {
		Name      string
		Body      string
		Countries []string
		Students  []int
		Stats     LoadStats
	}{
		{
			Name:      "Valid Rows",
			Body:      csvRow("Angola", "3") + csvRow(" Peru ", " 2 "),
			Countries: []string{"Angola", "Peru"},
			Students:  []int{3, 2},
			Stats:     LoadStats{Rows: 2, Accepted: 2},
		},
		{
			Name:      "Repeated Country Is Kept Per Row",
			Body:      csvRow("Angola", "3") + csvRow("ANGOLA", "4"),
			Countries: []string{"Angola", "ANGOLA"},
			Students:  []int{3, 4},
			Stats:     LoadStats{Rows: 2, Accepted: 2},
		},
		{
			Name:      "Skips Short Empty Invalid And Negative",
			Body:      "2023;only;three\n" + csvRow("", "3") + csvRow("Chile", "") + csvRow("Chile", "abc") + csvRow("Chile", "-1") + csvRow("Chile", "0"),
			Countries: []string{"Chile"},
			Students:  []int{0},
			Stats:     LoadStats{Rows: 6, Accepted: 1, Skipped: 5},
		},
		{
			Name:  "Header Only",
			Body:  "",
			Stats: LoadStats{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rows, stats, err := ReadNationalities(strings.NewReader(sampleCSVHeader+tc.Body), defaultConfig.Dataset)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if stats != tc.Stats {
				t.Errorf("Expected stats %+v, got %+v", tc.Stats, stats)
			}
			if len(rows) != len(tc.Countries) {
				t.Fatalf("Expected %d rows, got %d", len(tc.Countries), len(rows))
			}
			for i, row := range rows {
				if row.Country != tc.Countries[i] || row.Students != tc.Students[i] {
					t.Errorf("Row %d: expected %s/%d, got %s/%d", i, tc.Countries[i], tc.Students[i], row.Country, row.Students)
				}
			}
		})
	}
}

func TestReadNationalitiesWithoutHeader(t *testing.T) {
	cfg := defaultConfig.Dataset
	cfg.SkipHeader = false
	cfg.Delimiter = ","
	cfg.CountryColumn = 0
	cfg.StudentsColumn = 1

	rows, stats, err := ReadNationalities(strings.NewReader("\uFEFFBrasil,7\nChile,2\n"), cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Accepted != 2 || rows[0].Country != "Brasil" {
		t.Errorf("Expected BOM to be stripped from first row, got %+v (%+v)", rows, stats)
	}
}

func TestReadNationalitiesLatin1(t *testing.T) {
	cfg := defaultConfig.Dataset
	cfg.Encoding = "windows-1252"

	encoded, err := charmap.Windows1252.NewEncoder().String("A;B;C;D;E;F;G;DS_PAIS;N\n" + csvRow("Ucrânia", "4"))
	if err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}
	rows, _, err := ReadNationalities(strings.NewReader(encoded), cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Country != "Ucrânia" {
		t.Errorf("Expected decoded country Ucrânia, got %+v", rows)
	}
}

func TestReadNationalitiesRejectsBadConfig(t *testing.T) {
	cfg := defaultConfig.Dataset
	cfg.Delimiter = ";;"
	if _, _, err := ReadNationalities(strings.NewReader(""), cfg); err == nil {
		t.Errorf("Expected error for multi-character delimiter")
	}

	cfg = defaultConfig.Dataset
	cfg.Encoding = "ebcdic"
	if _, _, err := ReadNationalities(strings.NewReader(""), cfg); err == nil {
		t.Errorf("Expected error for unsupported encoding")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alunos.csv")
	if err := os.WriteFile(path, []byte(sampleCSVHeader+csvRow("Angola", "3")), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows, stats, err := LoadCSV(path, defaultConfig.Dataset, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 1 || stats.Accepted != 1 {
		t.Errorf("Expected one accepted row, got %+v", stats)
	}

	if _, _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), defaultConfig.Dataset, false); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
