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

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// scriptReference documents the command language shared by exec and explore
const scriptReference = `# Commands
| Command | Aliases | Effect |
|---|---|---|
| insert <key> [value...] | put, set | store a key, replacing any old value |
| remove <key>... | delete, rm | remove keys; absent keys are reported |
| find <key> | get | print the value, or fail when the key is absent |
| list [count] | ls | print pairs in key order |
| show | print, tree | draw the tree with balance factors |
| check | validate | verify parent links, balance factors and order |
| stats | | key count and height |
| clear | reset | drop every key |

Quote keys or values that contain spaces: insert "new york" 8.3M
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

A self-balancing AVL tree you can load, script, stress and explore from the terminal.

Built with Go %s

# 1. Features
* Load key/value datasets into an AVL tree (key<TAB>value, key=value or bare keys)
* Run scripts of insert, remove and find commands against the tree
* Draw the tree with the balance factor of every node
* Stress the tree with seeded random workloads, checking every invariant as it goes
* Explore the tree interactively in a terminal UI

# 2. Key ordering
* natural: digit runs compare by value (9 < 10)
* lexical: plain string order (10 < 9)

%s
# 3. Configuration
Settings live in ~/.avlkit.yaml. Run 'avlkit settings' to create and inspect it.

# Please be aware
* Copy to clipboard in the explorer on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), scriptReference)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
