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
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybrota/nationtree/nationality"
	"github.com/cybrota/nationtree/questions"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// loadDataset resolves the CSV path from the --csv flag or the config and
// loads it into both trees.
func loadDataset(cmd *cobra.Command, config *Config) *Dataset {
	path := config.Dataset.Path
	if flag := cmd.Flag("csv"); flag != nil && flag.Changed {
		path = flag.Value.String()
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		config.UI.ShowProgress = false
	}

	dataset, err := OpenDataset(config, path)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	return dataset
}

func mustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		c := defaultConfig
		config = &c
	}
	return config
}

func main() {
	asciiLogo := `
┌──────────────────────────────────────────────┐
│   🌳  N A T I O N T R E E                    │
│   BST vs AVL over foreign student records    │
└──────────────────────────────────────────────┘
Search trees for nationality statistics [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runUI := func(cmd *cobra.Command, args []string) {
		config := mustLoadConfig()
		dataset := loadDataset(cmd, config)
		if err := runBubbleTeaApp(dataset, config); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the nationtree UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the terminal UI to ask questions of both trees and look countries up`),
		Args:  cobra.NoArgs,
		Run:   runUI,
	}

	var cmdReport = &cobra.Command{
		Use:   "report [question] [args...]",
		Short: "Answer a question on both trees",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Report answers a question on the BST and the AVL tree and prints the time each took.
Without a question it lists the available ones. Questions can be given by ID or number.`),
		Example: "  nationtree report top 5\n  nationtree report range 10 50\n  nationtree report 4",
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			dataset := loadDataset(cmd, config)
			if len(args) == 0 {
				renderQuestionList(os.Stdout, dataset.Questions().Questions())
				return
			}
			res, err := dataset.Ask(args[0], questions.NewRequest(args[1:]))
			if err != nil {
				log.Fatalf("Error answering %q: %v", args[0], err)
			}
			renderAnswer(os.Stdout, res)
		},
	}

	var cmdSearch = &cobra.Command{
		Use:   "search <country>",
		Short: "Look a country up in both trees",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Search looks a country up, ignoring case, and prints the comparisons each tree needed`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			dataset := loadDataset(cmd, config)
			country := strings.Join(args, " ")
			renderLookup(os.Stdout, country, dataset.Lookup(country))
		},
	}

	var cmdRemove = &cobra.Command{
		Use:   "remove <country>",
		Short: "Remove a country from both trees",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Remove deletes a country from the loaded trees and prints their shape afterwards. The CSV file is not modified.`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			dataset := loadDataset(cmd, config)
			country := strings.Join(args, " ")
			if !dataset.Remove(country) {
				fmt.Printf("%s%s was not found%s\n", Warning, country, Reset)
			} else {
				fmt.Printf("%sRemoved %s%s\n", Green, country, Reset)
			}
			renderShape(os.Stdout, dataset.Shape())
			if err := dataset.Check(); err != nil {
				log.Fatalf("Tree invariant violated: %v", err)
			}
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print dataset and tree statistics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			dataset := loadDataset(cmd, config)
			path, _ := cmd.Flags().GetString("csv")
			if !cmd.Flag("csv").Changed {
				path = config.Dataset.Path
			}
			renderLoadStats(os.Stdout, path, dataset.Stats())
			fmt.Println()
			res, err := dataset.Ask("total", nil)
			if err != nil {
				log.Fatalf("Error computing totals: %v", err)
			}
			renderAnswer(os.Stdout, res)
			fmt.Println()
			renderShape(os.Stdout, dataset.Shape())
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Draw a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show draws the shape of one tree, left (L) and right (R) children under each node`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			dataset := loadDataset(cmd, config)
			variant, _ := cmd.Flags().GetString("variant")
			idx, err := dataset.Tree(variant)
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Print(idx.Render(nationality.Label))

			if check, _ := cmd.Flags().GetBool("check"); check {
				if err := idx.Check(); err != nil {
					log.Fatalf("%sInvariant violated:%s %v", Error, Reset, err)
				}
				fmt.Printf("%s✅ %s invariants hold (%d nodes, height %d)%s\n", Green, strings.ToUpper(variant), idx.Size(), idx.Height(), Reset)
			}
		},
	}
	cmdShow.Flags().String("variant", "avl", "tree to draw: bst or avl")
	cmdShow.Flags().Bool("check", false, "verify ordering, parent links and balance")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark both trees on integer keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts N distinct keys, searches all of them and removes half, reporting time and comparisons per tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			size, order, seed := config.Benchmark.Size, config.Benchmark.Order, config.Benchmark.Seed
			if cmd.Flag("size").Changed {
				size, _ = cmd.Flags().GetInt("size")
			}
			if cmd.Flag("order").Changed {
				order, _ = cmd.Flags().GetString("order")
			}
			if cmd.Flag("seed").Changed {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			if size <= 0 {
				log.Fatalf("Benchmark size must be positive, got %d", size)
			}

			keys, err := benchKeys(size, order, seed)
			if err != nil {
				log.Fatalf("Error generating keys: %v", err)
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			results := RunBenchmark(keys, config.UI.ShowProgress && !quiet)
			renderBenchmark(os.Stdout, size, order, results)
		},
	}
	cmdBench.Flags().Int("size", defaultConfig.Benchmark.Size, "number of distinct keys")
	cmdBench.Flags().String("order", defaultConfig.Benchmark.Order, "key order: random or ascending")
	cmdBench.Flags().Int64("seed", defaultConfig.Benchmark.Seed, "seed for random keys")

	var cmdGenerate = &cobra.Command{
		Use:   "generate",
		Short: "Write a sample dataset",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig()
			rows, _ := cmd.Flags().GetInt("rows")
			seed, _ := cmd.Flags().GetInt64("seed")
			dirty, _ := cmd.Flags().GetBool("dirty")
			out, _ := cmd.Flags().GetString("out")

			w := os.Stdout
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					log.Fatalf("Error creating %s: %v", out, err)
				}
				defer f.Close()
				w = f
			}

			opts := GenerateOptions{Rows: rows, Seed: seed, Delimiter: []rune(config.Dataset.Delimiter)[0], Dirty: dirty}
			if err := GenerateCSV(w, opts); err != nil {
				log.Fatalf("Error writing sample dataset: %v", err)
			}
			if w != os.Stdout {
				fmt.Fprintf(os.Stderr, "%s✅ Wrote %d rows to %s%s\n", Green, rows, out, Reset)
			}
		},
	}
	cmdGenerate.Flags().Int("rows", 500, "number of data rows")
	cmdGenerate.Flags().Int64("seed", 1, "seed for the fake data")
	cmdGenerate.Flags().Bool("dirty", false, "include rows the loader must skip")
	cmdGenerate.Flags().String("out", "", "output file (stdout when empty)")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints ~/.nationtree.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print nationtree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the nationtree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print nationtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "nationtree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to the UI when no subcommand is provided
		Run: runUI,
	}
	rootCmd.PersistentFlags().String("csv", defaultConfig.Dataset.Path, "dataset to load")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "hide progress bars")

	rootCmd.AddCommand(cmdRun, cmdReport, cmdSearch, cmdRemove, cmdStats, cmdShow, cmdBench, cmdGenerate, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
