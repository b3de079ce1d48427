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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Nationtree %s**

Load foreign student counts per nationality from a CSV file into two search trees,
an unbalanced binary search tree and an AVL tree, and compare how they answer the same questions.

Built with Go %s

# 1. Features
* Aggregates repeated countries case-insensitively while loading
* Answers the same question on both trees and times each one
* Counts key comparisons per search, insert and remove
* Benchmarks random or ascending integer keys to show where the unbalanced tree degrades
* Terminal UI with question list, answer view and country lookup

# 2. Commands
* **nationtree run**: open the terminal UI
* **nationtree report [question] [args]**: answer a question (top, single, range, max, total, list)
* **nationtree search <country>**: look a country up in both trees
* **nationtree remove <country>**: remove a country and show the resulting trees
* **nationtree stats**: dataset and tree statistics
* **nationtree show --variant avl**: draw a tree
* **nationtree bench --size 10000 --order ascending**: compare the trees on integer keys
* **nationtree generate --rows 500**: write a sample CSV
* **nationtree settings**: show or create ~/.nationtree.yaml

# 3. Dataset layout
* Fields separated by ';', first line is a header
* Column 7 (zero based) holds the country, column 8 the number of students
* Rows with an empty country, a missing or non-numeric count, or a negative count are skipped

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
