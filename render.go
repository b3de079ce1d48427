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
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/cybrota/nationtree/questions"
)

// formatDuration prints d in ns, µs or ms, whichever reads best.
func formatDuration(d time.Duration) string {
	nanos := d.Nanoseconds()
	switch {
	case nanos > 1_000_000:
		return fmt.Sprintf("%.3f ms", float64(nanos)/1_000_000)
	case nanos > 1_000:
		return fmt.Sprintf("%.3f µs", float64(nanos)/1_000)
	default:
		return fmt.Sprintf("%d ns", nanos)
	}
}

func toRow(cells []string) table.Row {
	return table.Row(lo.ToAnySlice(cells))
}

// newTable returns a rounded table mirrored to out. The title is printed
// above the table since go-pretty wraps titles to the table width. Headers
// keep their case.
func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	if out != nil {
		t.SetOutputMirror(out)
		if title != "" {
			fmt.Fprintf(out, "%s%s%s\n", Info, title, Reset)
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	return t
}

func answerTable(out io.Writer, res *questions.Result) table.Writer {
	t := newTable(out, res.Question.Title())
	t.AppendHeader(toRow(res.Answer.Columns))
	for _, row := range res.Answer.Rows {
		t.AppendRow(toRow(row))
	}
	t.SetCaption(res.Answer.Summary)
	return t
}

func timingTable(out io.Writer, res *questions.Result) table.Writer {
	title := "Execution time"
	if res.Cached {
		title += " (cached)"
	}
	t := newTable(out, title)
	t.AppendHeader(table.Row{"Tree", "Elapsed"})
	for _, timing := range res.Timings {
		t.AppendRow(table.Row{timing.Source, formatDuration(timing.Elapsed)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return t
}

func renderAnswer(out io.Writer, res *questions.Result) {
	answerTable(out, res).Render()
	fmt.Fprintln(out)
	timingTable(out, res).Render()
	if !res.Consistent {
		fmt.Fprintf(out, "%s⚠️  The trees returned different answers%s\n", Warning, Reset)
	}
}

// answerMarkdown renders a result for the terminal UI.
func answerMarkdown(res *questions.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", res.Question.Title())
	if len(res.Answer.Rows) > 0 {
		b.WriteString(answerTable(nil, res).RenderMarkdown())
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "**%s**\n\n", res.Answer.Summary)
	if res.Cached {
		b.WriteString("_Cached answer, timings from the first run:_\n\n")
	}
	for _, timing := range res.Timings {
		fmt.Fprintf(&b, "* %s: %s\n", timing.Source, formatDuration(timing.Elapsed))
	}
	if !res.Consistent {
		b.WriteString("\n> The trees returned different answers\n")
	}
	return b.String()
}

func renderQuestionList(out io.Writer, qs []questions.Question) {
	t := newTable(out, "Questions")
	t.AppendHeader(table.Row{"#", "ID", "Question", "Usage"})
	for i, q := range qs {
		t.AppendRow(table.Row{i + 1, q.ID(), q.Title(), q.Usage()})
	}
	t.Render()
}

func renderLookup(out io.Writer, country string, results []LookupResult) {
	t := newTable(out, fmt.Sprintf("Search %q", country))
	t.AppendHeader(table.Row{"Tree", "Found", "Students", "Comparisons", "Elapsed"})
	for _, r := range results {
		students := "-"
		if r.Found {
			students = strconv.Itoa(r.Value.Students)
		}
		t.AppendRow(table.Row{r.Variant, r.Found, students, r.Comparisons, formatDuration(r.Elapsed)})
	}
	t.Render()
}

func lookupMarkdown(country string, results []LookupResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Search: %s\n\n", country)
	for _, r := range results {
		if r.Found {
			fmt.Fprintf(&b, "* **%s**: %s (%d comparisons, %s)\n", r.Variant, r.Value, r.Comparisons, formatDuration(r.Elapsed))
		} else {
			fmt.Fprintf(&b, "* **%s**: not found (%d comparisons, %s)\n", r.Variant, r.Comparisons, formatDuration(r.Elapsed))
		}
	}
	return b.String()
}

func renderShape(out io.Writer, shapes []TreeShape) {
	t := newTable(out, "Trees")
	t.AppendHeader(table.Row{"Tree", "Nodes", "Height", "Comparisons"})
	for _, s := range shapes {
		t.AppendRow(table.Row{s.Variant, s.Size, s.Height, s.Comparisons})
	}
	t.Render()
}

func renderLoadStats(out io.Writer, path string, stats LoadStats) {
	t := newTable(out, "Dataset")
	t.AppendRows([]table.Row{
		{"File", path},
		{"Rows", stats.Rows},
		{"Accepted", stats.Accepted},
		{"Skipped", stats.Skipped},
	})
	t.Render()
}
