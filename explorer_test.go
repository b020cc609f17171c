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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestExplorer(t *testing.T, keys ...string) Model {
	t.Helper()
	idx := NewIndex(testIndexOptions())
	for _, k := range keys {
		idx.Put(k, "v"+k)
	}
	m := NewExplorerModel(idx)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func submit(m Model, line string) Model {
	m.commandInput.SetValue(line)
	return press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestExplorerRunsCommands(t *testing.T) {
	m := newTestExplorer(t)

	m = submit(m, "insert 5 five")
	if m.idx.Len() != 1 || m.status != "inserted 5" || m.statusErr {
		t.Fatalf("after insert: len %d, status %q, err %v", m.idx.Len(), m.status, m.statusErr)
	}
	if m.commandInput.Value() != "" {
		t.Errorf("input not cleared after running a command")
	}
	if len(m.keysList.Items()) != 1 {
		t.Errorf("keys list has %d items; want 1", len(m.keysList.Items()))
	}

	m = submit(m, "find 6")
	if !m.statusErr || !strings.Contains(m.status, "key not found") {
		t.Errorf("after missing find: status %q, err %v", m.status, m.statusErr)
	}

	// history recall
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.commandInput.Value() != "find 6" {
		t.Errorf("up recalled %q; want 'find 6'", m.commandInput.Value())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.commandInput.Value() != "insert 5 five" {
		t.Errorf("second up recalled %q", m.commandInput.Value())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.commandInput.Value() != "" {
		t.Errorf("down past the newest entry left %q", m.commandInput.Value())
	}
}

func TestExplorerKeysPane(t *testing.T) {
	m := newTestExplorer(t, "1", "2", "3")

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focusIndex != focusKeys {
		t.Fatalf("tab moved focus to %d; want keys", m.focusIndex)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status != "1 = v1" {
		t.Errorf("enter on first key gave status %q", m.status)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.idx.Len() != 2 || m.status != "removed 1" {
		t.Errorf("x on first key: len %d, status %q", m.idx.Len(), m.status)
	}
	if err := m.idx.Validate(); err != nil {
		t.Errorf("tree invalid after removal: %v", err)
	}
}

func TestExplorerFocusAndReference(t *testing.T) {
	m := newTestExplorer(t, "a")

	for _, want := range []int{focusKeys, focusTree, focusInput} {
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focusIndex != want {
			t.Fatalf("focus = %d; want %d", m.focusIndex, want)
		}
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusIndex != focusTree {
		t.Errorf("shift+tab focus = %d; want tree", m.focusIndex)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showReference || !strings.Contains(m.View(), "Command Reference") {
		t.Errorf("f1 did not show the command reference")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyF1})
	if m.showReference || !strings.Contains(m.View(), "Tree (height 1)") {
		t.Errorf("second f1 did not return to the tree")
	}
}

func TestExplorerStatusKeepsFirstLine(t *testing.T) {
	m := newTestExplorer(t, "a", "b")
	m = submit(m, "list")
	if m.status != "a\tva …" {
		t.Errorf("multi line status = %q", m.status)
	}
}

func TestListing(t *testing.T) {
	idx := NewIndex(testIndexOptions())
	idx.Put("b", "")
	idx.Put("a", "1")
	if got := listing(idx); got != "a\t1\nb\n" {
		t.Errorf("listing = %q", got)
	}
}

func TestExplorerSmallTerminal(t *testing.T) {
	m := NewExplorerModel(NewIndex(testIndexOptions()))
	if m.View() != "Initializing..." {
		t.Errorf("view before sizing = %q", m.View())
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(updated.(Model).View(), "too small") {
		t.Errorf("tiny terminal not reported")
	}
}

func TestExplorerFilterTakesTypedKeys(t *testing.T) {
	m := newTestExplorer(t, "box", "cat", "dog")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.filtering() {
		t.Fatalf("'/' did not start filtering the keys list")
	}

	for _, r := range "xc" {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.idx.Len() != 3 {
		t.Errorf("typing in the filter removed a key: %d keys left, status %q", m.idx.Len(), m.status)
	}
	if got := m.keysList.FilterValue(); got != "xc" {
		t.Errorf("filter text = %q; want xc", got)
	}

	// esc leaves the filter instead of quitting
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.filtering() {
		t.Errorf("esc did not leave the filter")
	}
	if m.idx.Len() != 3 {
		t.Errorf("esc while filtering changed the index")
	}
}
