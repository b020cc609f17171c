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
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUsage is returned when a command is given the wrong arguments.
var ErrUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", ErrUsage, format)
}

// verbSet is embedded by handlers to answer to a fixed list of verbs
type verbSet []string

func (v verbSet) Supports(verb string) bool {
	return slices.Contains(v, verb)
}

// InsertHandler stores a key with an optional value
type InsertHandler struct {
	verbSet
}

func NewInsertHandler() *InsertHandler {
	return &InsertHandler{verbSet: verbSet{"insert", "put", "set"}}
}

func (h *InsertHandler) Priority() int {
	return 10
}

func (h *InsertHandler) Run(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", usage("insert <key> [value...]")
	}
	key := cmd.GetArg(0)
	value := strings.Join(cmd.Args[1:], " ")
	store.Put(key, value)
	return fmt.Sprintf("inserted %s", key), nil
}

// RemoveHandler deletes one or more keys. Absent keys are reported, not failed.
type RemoveHandler struct {
	verbSet
}

func NewRemoveHandler() *RemoveHandler {
	return &RemoveHandler{verbSet: verbSet{"remove", "delete", "rm"}}
}

func (h *RemoveHandler) Priority() int {
	return 20
}

func (h *RemoveHandler) Run(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", usage("remove <key>...")
	}
	lines := make([]string, 0, len(cmd.Args))
	for _, key := range cmd.Args {
		if store.Delete(key) {
			lines = append(lines, fmt.Sprintf("removed %s", key))
		} else {
			lines = append(lines, fmt.Sprintf("%s not present", key))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// FindHandler looks a key up; a missing key is an error
type FindHandler struct {
	verbSet
}

func NewFindHandler() *FindHandler {
	return &FindHandler{verbSet: verbSet{"find", "get"}}
}

func (h *FindHandler) Priority() int {
	return 30
}

func (h *FindHandler) Run(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", usage("find <key>")
	}
	key := cmd.GetArg(0)
	value, err := store.Lookup(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s = %s", key, value), nil
}

// ListHandler prints pairs in key order, optionally only the first n
type ListHandler struct {
	verbSet
	Limit int64
}

func NewListHandler(limit int64) *ListHandler {
	return &ListHandler{verbSet: verbSet{"list", "ls"}, Limit: limit}
}

func (h *ListHandler) Priority() int {
	return 40
}

func (h *ListHandler) Run(store Store, cmd *Command) (string, error) {
	count := -1
	if cmd.HasArgs(1) {
		n, err := strconv.Atoi(cmd.GetArg(0))
		if err != nil || n < 0 {
			return "", usage("list [count]")
		}
		count = n
	}

	limit := h.Limit
	if limit <= 0 {
		limit = MaxListSize
	}
	var buf bytes.Buffer
	lw := NewLimitedWriter(&buf, limit)

	shown := 0
	for key, value := range store.Pairs() {
		if count >= 0 && shown == count {
			break
		}
		if value == "" {
			fmt.Fprintln(lw, key)
		} else {
			fmt.Fprintf(lw, "%s\t%s\n", key, value)
		}
		shown++
	}

	result := strings.TrimSuffix(buf.String(), "\n")
	if lw.Truncated() {
		result += truncatedNotice
	}
	if result == "" {
		return "(empty)", nil
	}
	return result, nil
}

// ShowHandler draws the tree
type ShowHandler struct {
	verbSet
}

func NewShowHandler() *ShowHandler {
	return &ShowHandler{verbSet: verbSet{"show", "print", "tree"}}
}

func (h *ShowHandler) Priority() int {
	return 50
}

func (h *ShowHandler) Run(store Store, cmd *Command) (string, error) {
	if store.Len() == 0 {
		return "(empty)", nil
	}
	return strings.TrimSuffix(store.Render(), "\n"), nil
}

// CheckHandler verifies the structural invariants of the tree
type CheckHandler struct {
	verbSet
}

func NewCheckHandler() *CheckHandler {
	return &CheckHandler{verbSet: verbSet{"check", "validate"}}
}

func (h *CheckHandler) Priority() int {
	return 60
}

func (h *CheckHandler) Run(store Store, cmd *Command) (string, error) {
	if err := store.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok: %d keys", store.Len()), nil
}

// StatsHandler reports size and height
type StatsHandler struct {
	verbSet
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{verbSet: verbSet{"stats"}}
}

func (h *StatsHandler) Priority() int {
	return 70
}

func (h *StatsHandler) Run(store Store, cmd *Command) (string, error) {
	return fmt.Sprintf("keys: %d, height: %d", store.Len(), store.Height()), nil
}

// ClearHandler removes every key
type ClearHandler struct {
	verbSet
}

func NewClearHandler() *ClearHandler {
	return &ClearHandler{verbSet: verbSet{"clear", "reset"}}
}

func (h *ClearHandler) Priority() int {
	return 80
}

func (h *ClearHandler) Run(store Store, cmd *Command) (string, error) {
	n := store.Len()
	store.Clear()
	return fmt.Sprintf("cleared %d keys", n), nil
}
