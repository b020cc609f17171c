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
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ParseLine splits a script line into a Command. Blank lines and lines
// starting with '#' yield a nil Command and no error.
func ParseLine(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	args, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return NewCommand(args), nil
}
