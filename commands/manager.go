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

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownCommand is returned when no handler accepts a verb.
var ErrUnknownCommand = errors.New("unknown command")

// Manager dispatches script commands to registered handlers
type Manager struct {
	handlers []Handler
}

// NewManager creates a new manager with all built-in handlers
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterHandler(NewInsertHandler())
	manager.RegisterHandler(NewRemoveHandler())
	manager.RegisterHandler(NewFindHandler())
	manager.RegisterHandler(NewListHandler(MaxListSize))
	manager.RegisterHandler(NewShowHandler())
	manager.RegisterHandler(NewCheckHandler())
	manager.RegisterHandler(NewStatsHandler())
	manager.RegisterHandler(NewClearHandler())

	return manager
}

// RegisterHandler registers a handler, keeping the list ordered by priority
func (m *Manager) RegisterHandler(handler Handler) {
	m.handlers = append(m.handlers, handler)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Handlers returns the registered handlers in priority order
func (m *Manager) Handlers() []Handler {
	return m.handlers
}

// Execute runs a single parsed command against store
func (m *Manager) Execute(store Store, cmd *Command) (string, error) {
	if cmd == nil || cmd.Verb == "" {
		return "", fmt.Errorf("no command provided")
	}

	for _, handler := range m.handlers {
		if handler.Supports(cmd.Verb) {
			out, err := handler.Run(store, cmd)
			if err != nil {
				return "", fmt.Errorf("%s: %w", cmd.FullName, err)
			}
			return out, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Verb)
}

// ExecuteLine parses line and runs it. Blank and comment lines produce no output.
func (m *Manager) ExecuteLine(store Store, line string) (string, error) {
	cmd, err := ParseLine(line)
	if err != nil {
		return "", err
	}
	if cmd == nil {
		return "", nil
	}
	return m.Execute(store, cmd)
}

// ScriptResult summarises a RunScript call
type ScriptResult struct {
	Executed int
	Failed   int
}

// RunScript executes every line read from r, writing command output to w.
// It stops at the first failing line unless keepGoing is set, in which case
// failures are reported to w and counted.
func (m *Manager) RunScript(store Store, r io.Reader, w io.Writer, keepGoing bool) (ScriptResult, error) {
	var res ScriptResult
	out := NewLimitedWriter(w, MaxOutputSize)

	scanner := bufio.NewScanner(r)
	// Allow long values
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := ParseLine(scanner.Text())
		if err == nil && cmd == nil {
			continue
		}

		var text string
		if err == nil {
			text, err = m.Execute(store, cmd)
		}
		if err != nil {
			res.Failed++
			if !keepGoing {
				return res, fmt.Errorf("line %d: %w", lineNo, err)
			}
			fmt.Fprintf(out, "line %d: %v\n", lineNo, err)
			continue
		}

		res.Executed++
		if text != "" {
			fmt.Fprintln(out, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read script: %w", err)
	}

	if out.Truncated() {
		fmt.Fprint(w, truncatedNotice)
	}
	return res, nil
}
