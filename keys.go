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

import "strings"

const (
	OrderNatural = "natural"
	OrderLexical = "lexical"
)

func validOrder(order string) bool {
	return order == OrderNatural || order == OrderLexical
}

// comparatorFor returns the key ordering named by order. Unknown names
// fall back to natural ordering.
func comparatorFor(order string) func(a, b string) int {
	if order == OrderLexical {
		return strings.Compare
	}
	return naturalCompare
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// naturalCompare orders strings so that runs of digits compare by numeric
// value: "item9" < "item10". Strings that differ only in leading zeros are
// ordered byte-wise so that equality still means identical keys.
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if !isDigit(a[i]) || !isDigit(b[j]) {
			if a[i] != b[j] {
				if a[i] < b[j] {
					return -1
				}
				return 1
			}
			i++
			j++
			continue
		}

		si, sj := i, j
		for i < len(a) && isDigit(a[i]) {
			i++
		}
		for j < len(b) && isDigit(b[j]) {
			j++
		}
		if c := compareDigits(a[si:i], b[sj:j]); c != 0 {
			return c
		}
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return strings.Compare(a, b)
}

// compareDigits compares two non-empty digit runs by numeric value.
func compareDigits(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}
