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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one key/value pair read from a dataset
type Entry struct {
	Key   string
	Value string
}

// parseEntry splits a dataset line. Accepted forms are "key<TAB>value",
// "key=value" and a bare "key". Blank lines and '#' comments yield ok=false.
func parseEntry(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	var key, value string
	if k, v, found := strings.Cut(line, "\t"); found {
		key, value = k, v
	} else if k, v, found := strings.Cut(line, "="); found {
		key, value = k, v
	} else {
		key = line
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Entry{}, false
	}
	return Entry{Key: key, Value: strings.TrimSpace(value)}, true
}

// readDataset reads entries from r in file order. Later lines for the same
// key are kept; inserting them in order leaves the last value in place.
func readDataset(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	// Allow long values
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		if e, ok := parseEntry(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// readDatasetFile reads a dataset from path, or from stdin when path is "-".
func readDatasetFile(path string) ([]Entry, error) {
	if path == "-" {
		return readDataset(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	entries, err := readDataset(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// loadDatasets reads every path in order into one index.
func loadDatasets(idx *Index, paths []string) (int, error) {
	total := 0
	for _, path := range paths {
		entries, err := readDatasetFile(path)
		if err != nil {
			return total, err
		}
		for _, e := range entries {
			idx.Put(e.Key, e.Value)
		}
		logger.Debug().Str("file", path).Int("entries", len(entries)).Msg("dataset loaded")
		total += len(entries)
	}
	return total, nil
}
