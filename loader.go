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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/cybrota/nationtree/nationality"
)

const utf8BOM = "\uFEFF"

// LoadStats summarises one pass over a CSV file.
type LoadStats struct {
	Rows     int // data rows read, header excluded
	Accepted int
	Skipped  int
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("unsupported dataset encoding %q", name)
}

// LoadCSV reads the nationality rows of the file at path.
func LoadCSV(path string, cfg DatasetConfig, showProgress bool) ([]nationality.Nationality, LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if showProgress {
		var size int64 = -1
		if info, err := file.Stat(); err == nil {
			size = info.Size()
		}
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetDescription("📂 Loading "+path),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		reader := progressbar.NewReader(file, bar)
		r = &reader
		defer bar.Finish()
	}

	return ReadNationalities(r, cfg)
}

// ReadNationalities parses CSV rows into nationalities. Rows that are too
// short, have an empty country or count, or a count that is not a whole
// number are skipped and logged with their line number. Negative counts are
// skipped silently.
func ReadNationalities(r io.Reader, cfg DatasetConfig) ([]nationality.Nationality, LoadStats, error) {
	var stats LoadStats

	enc, err := lookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, stats, err
	}
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}

	delim := []rune(cfg.Delimiter)
	if len(delim) != 1 {
		return nil, stats, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}

	reader := csv.NewReader(r)
	reader.Comma = delim[0]
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	need := max(cfg.CountryColumn, cfg.StudentsColumn)
	var rows []nationality.Nationality
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, stats, fmt.Errorf("failed to read dataset: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if len(record) > 0 {
				record[0] = strings.TrimPrefix(record[0], utf8BOM)
			}
			if cfg.SkipHeader {
				continue
			}
		}
		stats.Rows++

		if len(record) <= need {
			log.Printf("Skipping line %d: expected more than %d fields, got %d", line, need, len(record))
			stats.Skipped++
			continue
		}

		country := strings.TrimSpace(record[cfg.CountryColumn])
		rawCount := strings.TrimSpace(record[cfg.StudentsColumn])
		if country == "" || rawCount == "" {
			log.Printf("Skipping line %d: empty country or student count", line)
			stats.Skipped++
			continue
		}

		students, err := strconv.Atoi(rawCount)
		if err != nil {
			log.Printf("Skipping line %d: invalid student count %q", line, rawCount)
			stats.Skipped++
			continue
		}
		if students < 0 {
			stats.Skipped++
			continue
		}

		rows = append(rows, nationality.New(country, students))
		stats.Accepted++
	}

	return rows, stats, nil
}
