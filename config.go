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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".nationtree.yaml"

type DatasetConfig struct {
	Path           string `yaml:"path"`
	Delimiter      string `yaml:"delimiter"`
	Encoding       string `yaml:"encoding"`
	CountryColumn  int    `yaml:"country_column"`
	StudentsColumn int    `yaml:"students_column"`
	SkipHeader     bool   `yaml:"skip_header"`
}

type ReportConfig struct {
	TopN int `yaml:"top_n"`
}

type BenchmarkConfig struct {
	Size  int    `yaml:"size"`
	Order string `yaml:"order"`
	Seed  int64  `yaml:"seed"`
}

type UIConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Dataset   DatasetConfig   `yaml:"dataset"`
	Report    ReportConfig    `yaml:"report"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	UI        UIConfig        `yaml:"ui"`
}

var defaultConfig = Config{
	Dataset: DatasetConfig{
		Path:           "alunos_estrangeiros.csv",
		Delimiter:      ";",
		Encoding:       "utf-8",
		CountryColumn:  7,
		StudentsColumn: 8,
		SkipHeader:     true,
	},
	Report: ReportConfig{
		TopN: 10,
	},
	Benchmark: BenchmarkConfig{
		Size:  10000,
		Order: orderRandom,
		Seed:  42,
	},
	UI: UIConfig{
		ShowProgress: true,
	},
}

// LoadConfig reads ~/.nationtree.yaml. Any problem falls back to defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath), nil
}

// loadConfigFrom overlays the file at path on the defaults, so a partial file
// only changes the keys it names.
func loadConfigFrom(path string) *Config {
	config := defaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Unable to read %s, using defaults: %v", path, err)
		}
		return &config
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Invalid configuration in %s, using defaults: %v", path, err)
		config = defaultConfig
		return &config
	}

	if err := config.Validate(); err != nil {
		log.Printf("Invalid configuration in %s, using defaults: %v", path, err)
		config = defaultConfig
	}
	return &config
}

// Validate checks the values that would otherwise fail later at load time.
func (c *Config) Validate() error {
	if len([]rune(c.Dataset.Delimiter)) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character, got %q", c.Dataset.Delimiter)
	}
	if c.Dataset.CountryColumn < 0 || c.Dataset.StudentsColumn < 0 {
		return fmt.Errorf("dataset columns must not be negative")
	}
	if c.Report.TopN <= 0 {
		return fmt.Errorf("report.top_n must be positive, got %d", c.Report.TopN)
	}
	if c.Benchmark.Order != orderRandom && c.Benchmark.Order != orderAscending {
		return fmt.Errorf("benchmark.order must be %q or %q, got %q", orderRandom, orderAscending, c.Benchmark.Order)
	}
	if _, err := lookupEncoding(c.Dataset.Encoding); err != nil {
		return err
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config := loadConfigFrom(configPath)

	fmt.Printf("🔧 Nationtree Configuration Settings\n")
	fmt.Printf("═════════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📂 %sDataset:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n", Green, Reset, config.Dataset.Path)
	fmt.Printf("  • %sdelimiter%s: %q\n", Green, Reset, config.Dataset.Delimiter)
	fmt.Printf("  • %sencoding%s: %s\n", Green, Reset, config.Dataset.Encoding)
	fmt.Printf("  • %scountry_column%s: %d\n", Green, Reset, config.Dataset.CountryColumn)
	fmt.Printf("  • %sstudents_column%s: %d\n", Green, Reset, config.Dataset.StudentsColumn)
	fmt.Printf("  • %sskip_header%s: %t\n\n", Green, Reset, config.Dataset.SkipHeader)

	fmt.Printf("📋 %sReports:%s\n", Green, Reset)
	fmt.Printf("  • %stop_n%s: %d\n\n", Green, Reset, config.Report.TopN)

	fmt.Printf("⏱️  %sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d\n", Green, Reset, config.Benchmark.Size)
	fmt.Printf("  • %sorder%s: %s\n", Green, Reset, config.Benchmark.Order)
	fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Benchmark.Seed)

	fmt.Printf("🖥️  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.UI.ShowProgress)

	fmt.Printf("💡 Command flags such as --csv and --size override these values for a single run.\n")
}
