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
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/commands"
)

// Focus targets, in tab order
const (
	focusInput = iota
	focusKeys
	focusTree
	focusCount
)

// Model represents the explorer state
type Model struct {
	ready bool

	commandInput textinput.Model
	keysList     list.Model
	treeViewport viewport.Model

	idx     *Index
	manager *commands.Manager

	focusIndex    int
	showReference bool
	status        string
	statusErr     bool
	history       []string
	historyPos    int

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles from the current color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.TextMuted),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// keyItem is one stored pair in the keys list
type keyItem struct {
	key   string
	value string
}

func (i keyItem) FilterValue() string { return i.key }
func (i keyItem) Title() string       { return i.key }
func (i keyItem) Description() string { return i.value }

// statusMsg reports the outcome of an asynchronous action
type statusMsg struct {
	text string
	err  error
}

// NewExplorerModel creates the explorer over idx
func NewExplorerModel(idx *Index) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	keysList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	keysList.SetShowTitle(false)
	keysList.SetShowHelp(false)

	treeViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	styles := NewStyles()
	ti.PromptStyle = styles.InputPrompt

	m := Model{
		commandInput:    ti,
		keysList:        keysList,
		treeViewport:    treeViewport,
		idx:             idx,
		manager:         commands.NewManager(),
		focusIndex:      focusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("%d keys loaded", idx.Len()),
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window changes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// a filter being typed owns every key but ctrl+c, esc included
		if m.focusIndex == focusKeys && m.filtering() && msg.String() != "ctrl+c" {
			return m.updateKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			return m, nil
		case "f1":
			m.showReference = !m.showReference
			m.refreshPane()
			return m, nil
		case "ctrl+y":
			return m, copyListing(m.idx)
		}

		switch m.focusIndex {
		case focusInput:
			return m.updateInput(msg)
		case focusKeys:
			return m.updateKeys(msg)
		default:
			var cmd tea.Cmd
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

	case statusMsg:
		m.setStatus(msg.text, msg.err)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i
	if i == focusInput {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		line := strings.TrimSpace(m.commandInput.Value())
		if line == "" {
			return m, nil
		}
		m.run(line)
		m.history = append(m.history, line)
		m.historyPos = len(m.history)
		m.commandInput.SetValue("")
		return m, nil
	case "up":
		if m.historyPos > 0 {
			m.historyPos--
			m.commandInput.SetValue(m.history[m.historyPos])
			m.commandInput.CursorEnd()
		}
		return m, nil
	case "down":
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.commandInput.SetValue(m.history[m.historyPos])
		} else {
			m.historyPos = len(m.history)
			m.commandInput.SetValue("")
		}
		m.commandInput.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) filtering() bool {
	return m.keysList.FilterState() == list.Filtering
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering() {
		var cmd tea.Cmd
		m.keysList, cmd = m.keysList.Update(msg)
		return m, cmd
	}

	item, ok := m.keysList.SelectedItem().(keyItem)
	switch msg.String() {
	case "enter":
		if ok {
			m.run("find " + strconv.Quote(item.key))
		}
		return m, nil
	case "delete", "x":
		if ok {
			m.run("remove " + strconv.Quote(item.key))
		}
		return m, nil
	case "c":
		if ok {
			return m, copyText(item.key)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.keysList, cmd = m.keysList.Update(msg)
	return m, cmd
}

// run executes one script line against the index and refreshes the panes
func (m *Model) run(line string) {
	out, err := m.manager.ExecuteLine(m.idx, line)
	logger.Debug().Str("line", line).Err(err).Msg("explorer command")
	m.setStatus(out, err)
	m.refresh()
}

func (m *Model) setStatus(text string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	// multi line output such as show or list belongs in the pane
	if first, _, found := strings.Cut(text, "\n"); found {
		text = first + " …"
	}
	m.status = text
	m.statusErr = false
}

// refresh reloads the keys list and the right hand pane from the index
func (m *Model) refresh() {
	items := make([]list.Item, 0, m.idx.Len())
	for k, v := range m.idx.Pairs() {
		items = append(items, keyItem{key: k, value: v})
	}
	m.keysList.SetItems(items)
	m.refreshPane()
}

func (m *Model) refreshPane() {
	if m.showReference {
		if rendered, err := m.glamourRenderer.Render(scriptReference); err == nil {
			m.treeViewport.SetContent(rendered)
		} else {
			m.treeViewport.SetContent(scriptReference)
		}
		return
	}

	if m.idx.Len() == 0 {
		m.treeViewport.SetContent("The tree is empty. Try: insert 42 answer")
		return
	}
	m.treeViewport.SetContent(m.idx.Render())
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 6
	m.keysList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = inputHeight + listHeight
}

func (m Model) box(focus int, title string, width, height int, body string) string {
	style := m.styles.BorderBlurred
	if m.focusIndex == focus {
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

// View renders the explorer
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.box(focusInput, " 🌳 Command", leftWidth, inputHeight, m.commandInput.View())
	keysBox := m.box(focusKeys, fmt.Sprintf(" 🔑 Keys (%d)", m.idx.Len()), leftWidth, listHeight, m.keysList.View())

	paneTitle := fmt.Sprintf(" 🌲 Tree (height %d)", m.idx.Height())
	if m.showReference {
		paneTitle = " 📖 Command Reference"
	}
	paneBox := m.box(focusTree, paneTitle, rightWidth, inputHeight+listHeight+2, m.treeViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, keysBox),
		paneBox,
	)

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(lipgloss.Left, main, status, m.renderHelp())
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "x", "c", "ctrl+y", "f1", "esc"}
	descs := []string{"run / find", "switch focus", "remove key", "copy key", "copy listing", "reference", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// listing returns every pair in key order, one per line
func listing(idx *Index) string {
	var b strings.Builder
	for k, v := range idx.Pairs() {
		b.WriteString(k)
		if v != "" {
			b.WriteString("\t")
			b.WriteString(v)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return statusMsg{text: "📋 copied to clipboard"}
	}
}

func copyListing(idx *Index) tea.Cmd {
	return copyText(listing(idx))
}

// runExplorer starts the explorer on the terminal's alternate screen
func runExplorer(idx *Index) error {
	program := tea.NewProgram(
		NewExplorerModel(idx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
