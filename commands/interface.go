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
	"iter"
	"strings"
)

// Store is the ordered key/value collection script commands act on.
type Store interface {
	Put(key, value string)
	Delete(key string) bool
	Lookup(key string) (string, error)
	Pairs() iter.Seq2[string, string]
	Len() int
	Height() int
	Validate() error
	Render() string
	Clear()
}

// Handler executes one kind of script command against a Store
type Handler interface {
	Run(store Store, cmd *Command) (string, error)
	Supports(verb string) bool
	Priority() int // Lower number = higher priority
}

// Command represents a parsed script line with its parts
type Command struct {
	Parts    []string
	Verb     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from line parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Verb:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// GetArg returns the nth argument (0-indexed)
func (c *Command) GetArg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}
