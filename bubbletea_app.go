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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/nationtree/questions"
)

// BubbleTeaMode represents different UI modes
type BubbleTeaMode int

const (
	ModeQuestions BubbleTeaMode = iota
	ModeLookup
)

// Focus targets in questions mode
const (
	focusArgs = iota
	focusList
	focusAnswer
)

// Model represents the Bubble Tea application state
type Model struct {
	mode  BubbleTeaMode
	ready bool

	// Questions components
	argsInput      textinput.Model
	questionList   list.Model
	answerViewport viewport.Model

	// Lookup components
	lookupInput    textinput.Model
	lookupViewport viewport.Model

	// Data
	dataset *Dataset
	config  *Config

	// State
	focusIndex  int
	answer      string // markdown of the last answer, for copying
	lastLookup  string
	statusLine  string
	statusIsErr bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// questionItem represents an item in the questions list
type questionItem struct {
	question questions.Question
}

func (i questionItem) FilterValue() string { return i.question.ID() }
func (i questionItem) Title() string       { return i.question.Title() }
func (i questionItem) Description() string { return i.question.Usage() }

// InitialModel creates the initial model
func InitialModel(dataset *Dataset, config *Config) Model {
	args := textinput.New()
	args.Placeholder = fmt.Sprintf("Arguments, e.g. %d or 10 50", config.Report.TopN)
	args.Focus()
	args.CharLimit = 64
	args.Width = 40

	var items []list.Item
	for _, q := range dataset.Questions().Questions() {
		items = append(items, questionItem{question: q})
	}
	questionList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	questionList.SetShowTitle(false)
	questionList.SetShowHelp(false)
	questionList.SetShowStatusBar(false)
	questionList.SetFilteringEnabled(false)

	answerViewport := viewport.New(0, 0)
	answerViewport.SetContent("Select a question and press enter...")

	lookup := textinput.New()
	lookup.Placeholder = "Type a country..."
	lookup.CharLimit = 128
	lookup.Width = 40

	lookupViewport := viewport.New(0, 0)
	lookupViewport.SetContent("Results from both trees appear here as you type.")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(72),
	)

	return Model{
		mode:            ModeQuestions,
		argsInput:       args,
		questionList:    questionList,
		answerViewport:  answerViewport,
		lookupInput:     lookup,
		lookupViewport:  lookupViewport,
		dataset:         dataset,
		config:          config,
		focusIndex:      focusArgs,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2":
			if m.mode == ModeQuestions {
				m.mode = ModeLookup
				m.argsInput.Blur()
				m.lookupInput.Focus()
			} else {
				m.mode = ModeQuestions
				m.lookupInput.Blur()
				if m.focusIndex == focusArgs {
					m.argsInput.Focus()
				}
			}
			m.updateLayout()
			return m, nil
		}

		if m.mode == ModeQuestions {
			return m.updateQuestionsMode(msg)
		}
		return m.updateLookupMode(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateQuestionsMode handles key events for the questions view
func (m Model) updateQuestionsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusArgs {
			m.argsInput.Focus()
		} else {
			m.argsInput.Blur()
		}
		return m, nil
	case "enter":
		m.askSelected()
		return m, nil
	case "ctrl+y":
		if m.answer == "" {
			return m, nil
		}
		if err := copyToClipboard(m.answer); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		} else {
			m.setStatus("Answer copied to clipboard", false)
		}
		return m, nil
	case "up", "k":
		switch m.focusIndex {
		case focusList:
			m.questionList.CursorUp()
			return m, nil
		case focusAnswer:
			m.answerViewport.LineUp(1)
			return m, nil
		}
	case "down", "j":
		switch m.focusIndex {
		case focusList:
			m.questionList.CursorDown()
			return m, nil
		case focusAnswer:
			m.answerViewport.LineDown(1)
			return m, nil
		}
	case "home":
		if m.focusIndex == focusAnswer {
			m.answerViewport.GotoTop()
			return m, nil
		}
	case "end":
		if m.focusIndex == focusAnswer {
			m.answerViewport.GotoBottom()
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusArgs:
		m.argsInput, cmd = m.argsInput.Update(msg)
	case focusAnswer:
		m.answerViewport, cmd = m.answerViewport.Update(msg)
	}
	return m, cmd
}

// updateLookupMode handles key events for the lookup view
func (m Model) updateLookupMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "pgup":
		m.lookupViewport.LineUp(m.lookupViewport.Height)
		return m, nil
	case "pgdown":
		m.lookupViewport.LineDown(m.lookupViewport.Height)
		return m, nil
	}

	m.lookupInput, cmd = m.lookupInput.Update(msg)
	if query := strings.TrimSpace(m.lookupInput.Value()); query != m.lastLookup {
		m.lastLookup = query
		m.updateLookup(query)
	}
	return m, cmd
}

func (m *Model) askSelected() {
	item, ok := m.questionList.SelectedItem().(questionItem)
	if !ok {
		return
	}
	req, err := questions.ParseRequest(m.argsInput.Value())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	res, err := m.dataset.Ask(item.question.ID(), req)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.answer = answerMarkdown(res)
	m.answerViewport.SetContent(m.renderMarkdown(m.answer))
	m.answerViewport.GotoTop()
	m.setStatus(res.Answer.Summary, false)
}

func (m *Model) updateLookup(query string) {
	if query == "" {
		m.lookupViewport.SetContent("Results from both trees appear here as you type.")
		return
	}
	content := lookupMarkdown(query, m.dataset.Lookup(query))
	m.lookupViewport.SetContent(m.renderMarkdown(content))
}

func (m *Model) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content
	}
	if rendered, err := m.glamourRenderer.Render(content); err == nil {
		return rendered
	}
	return content
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusLine = text
	m.statusIsErr = isErr
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}
	if m.mode == ModeQuestions {
		return m.renderQuestionsView()
	}
	return m.renderLookupView()
}

func (m Model) box(focused bool, width, height int, title string, body string) string {
	style := m.styles.BorderBlurred
	if focused {
		style = m.styles.BorderFocused
		title += " (Active)"
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			body,
		))
}

func (m Model) renderQuestionsView() string {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.box(m.focusIndex == focusArgs, leftWidth, inputHeight, " ⌨️  Arguments", m.argsInput.View())
	listBox := m.box(m.focusIndex == focusList, leftWidth, listHeight, " ❓ Questions", m.questionList.View())
	answerBox := m.box(m.focusIndex == focusAnswer, rightWidth, inputHeight+listHeight+2, " 📊 Answer (BST vs AVL)", m.answerViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		answerBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp([][2]string{
			{"enter", "ask"},
			{"tab", "switch focus"},
			{"ctrl+y", "copy answer"},
			{"f2", "lookup mode"},
			{"esc", "quit"},
		}),
	)
}

func (m Model) renderLookupView() string {
	inputHeight := 3
	resultHeight := m.height - inputHeight - 7
	width := m.width - 2

	inputBox := m.box(true, width, inputHeight, " 🔍 Country", m.lookupInput.View())

	shapes := make([]string, 0, 2)
	for _, s := range m.dataset.Shape() {
		shapes = append(shapes, fmt.Sprintf("%s: %d nodes, height %d", s.Variant, s.Size, s.Height))
	}
	resultBox := m.box(false, width, resultHeight, " 🌳 "+strings.Join(shapes, " • "), m.lookupViewport.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		resultBox,
		m.renderStatus(),
		m.renderKeyHelp([][2]string{
			{"pgup/pgdown", "scroll"},
			{"f2", "questions mode"},
			{"esc", "quit"},
		}),
	)
}

func (m Model) renderStatus() string {
	if m.statusLine == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusIsErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.statusLine))
}

func (m Model) renderKeyHelp(bindings [][2]string) string {
	var helpEntries []string
	for _, b := range bindings {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(b[0]),
				m.styles.HelpDesc.Render(b[1])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func (m *Model) updateLayout() {
	inputHeight := 3
	if m.mode == ModeQuestions {
		listHeight := m.height - inputHeight - 7
		leftWidth := (m.width * 4 / 10) - 1
		rightWidth := m.width - leftWidth - 3

		m.argsInput.Width = leftWidth - 4
		m.questionList.SetSize(leftWidth-2, listHeight-2)
		m.answerViewport.Width = rightWidth - 2
		m.answerViewport.Height = inputHeight + listHeight
	} else {
		width := m.width - 2
		m.lookupInput.Width = width - 4
		m.lookupViewport.Width = width - 2
		m.lookupViewport.Height = m.height - inputHeight - 9
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// markdownStyle picks the glamour theme matching the detected terminal mode.
func markdownStyle() string {
	if GetTerminalMode() == TerminalModeLight {
		return styles.LightStyle
	}
	return styles.DarkStyle
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(dataset *Dataset, config *Config) error {
	model := InitialModel(dataset, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sUI error:%s %v\n", Error, Reset, err)
	}
	return err
}
