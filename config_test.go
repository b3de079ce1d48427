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
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return path
}

func TestLoadConfigFrom(t *testing.T) {
	testCases := []struct {
		Name   string
		Body   string
		Expect func(c *Config) bool
	}{
		{
			Name:   "Missing File Uses Defaults",
			Expect: func(c *Config) bool { return *c == defaultConfig },
		},
		{
			Name: "Partial File Overrides Named Keys",
			Body: "report:\n  top_n: 3\ndataset:\n  path: other.csv\n",
			Expect: func(c *Config) bool {
				return c.Report.TopN == 3 && c.Dataset.Path == "other.csv" &&
					c.Dataset.Delimiter == ";" && c.Benchmark.Size == defaultConfig.Benchmark.Size
			},
		},
		{
			Name:   "Malformed YAML Uses Defaults",
			Body:   "report: [unclosed",
			Expect: func(c *Config) bool { return *c == defaultConfig },
		},
		{
			Name:   "Invalid Values Use Defaults",
			Body:   "benchmark:\n  order: sideways\n",
			Expect: func(c *Config) bool { return *c == defaultConfig },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if tc.Body != "" {
				path = writeConfig(t, tc.Body)
			}
			if got := loadConfigFrom(path); !tc.Expect(got) {
				t.Errorf("Unexpected config: %+v", got)
			}
		})
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := loadConfigFrom(path); *got != defaultConfig {
		t.Errorf("Expected written defaults to load back unchanged, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	c := defaultConfig
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults should be valid: %v", err)
	}
	c.Report.TopN = 0
	if err := c.Validate(); err == nil {
		t.Errorf("Expected top_n 0 to be rejected")
	}
	c = defaultConfig
	c.Dataset.Encoding = "klingon"
	if err := c.Validate(); err == nil {
		t.Errorf("Expected unknown encoding to be rejected")
	}
}
