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

// Package avl implements an ordered key/value map as an AVL tree with
// parent links and stored balance factors.
//
// Nodes are kept in a per-tree arena and addressed by index, so removal
// never leaves dangling references: a released slot goes onto a free list
// and is handed out again by the next insert.
//
// Every node carries balance = height(right) - height(left). Insert and
// Remove first do plain binary-search-tree placement or splicing, then walk
// towards the root adjusting balance factors and rotating until the
// subtree height stops changing.
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must guard whole operations with a mutex.
package avl
