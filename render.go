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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/avl"
)

type renderOptions struct {
	ShowValues  bool
	ShowBalance bool
}

// treeStyles colours the parts of a rendered node
type treeStyles struct {
	Key       lipgloss.Style
	Value     lipgloss.Style
	Balanced  lipgloss.Style
	Leaning   lipgloss.Style
	Violation lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		Key:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Value:     r.NewStyle().Foreground(lipgloss.Color("243")),
		Balanced:  r.NewStyle().Foreground(lipgloss.Color("46")),
		Leaning:   r.NewStyle().Foreground(lipgloss.Color("205")),
		Violation: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (s treeStyles) balance(b int) string {
	text := fmt.Sprintf("%+d", b)
	switch b {
	case 0:
		return s.Balanced.Render(text)
	case -1, 1:
		return s.Leaning.Render(text)
	}
	return s.Violation.Render(text)
}

func (s treeStyles) label(opts renderOptions) func(avl.Node[string, string]) string {
	return func(n avl.Node[string, string]) string {
		var b strings.Builder
		b.WriteString(s.Key.Render(n.Key()))
		if opts.ShowValues && n.Value() != "" {
			b.WriteString(s.Value.Render("=" + n.Value()))
		}
		if opts.ShowBalance {
			b.WriteString(" ")
			b.WriteString(s.balance(n.Balance()))
		}
		return b.String()
	}
}

// renderTree draws tree sideways with the default terminal renderer
func renderTree(tree *avl.Tree[string, string], opts renderOptions) string {
	return renderTreeWith(lipgloss.DefaultRenderer(), tree, opts)
}

func renderTreeWith(r *lipgloss.Renderer, tree *avl.Tree[string, string], opts renderOptions) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = tree.Fprint(&b, newTreeStyles(r).label(opts))
	return b.String()
}
