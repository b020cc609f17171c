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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// captureLogs sends the package logger to a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := logger
	logger = zerolog.New(&buf)
	t.Cleanup(func() { logger = saved })
	return &buf
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if *config != defaultConfig {
		t.Errorf("expected defaults, got %+v", *config)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, "keys:\n  order: lexical\nlookup:\n  cache_ttl: 30s\n")
	config := loadConfigFrom(path)

	if config.Keys.Order != OrderLexical {
		t.Errorf("Keys.Order = %q; want %q", config.Keys.Order, OrderLexical)
	}
	if config.Lookup.CacheTTL != 30*time.Second {
		t.Errorf("Lookup.CacheTTL = %v; want 30s", config.Lookup.CacheTTL)
	}
	if config.Lookup.BloomSize != defaultConfig.Lookup.BloomSize {
		t.Errorf("Lookup.BloomSize = %d; want default %d", config.Lookup.BloomSize, defaultConfig.Lookup.BloomSize)
	}
	if config.Log.Level != "info" {
		t.Errorf("Log.Level = %q; want info", config.Log.Level)
	}
}

func TestLoadConfigBadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed yaml", "keys: [unterminated\n", "malformed config file"},
		{"unknown order", "keys:\n  order: sideways\n", "unknown keys.order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			path := writeConfig(t, tt.body)

			config := loadConfigFrom(path)
			if config.Keys.Order != defaultConfig.Keys.Order {
				t.Errorf("Keys.Order = %q; want default %q", config.Keys.Order, defaultConfig.Keys.Order)
			}
			out := logs.String()
			if !strings.Contains(out, tt.message) || !strings.Contains(out, path) {
				t.Errorf("expected a warning naming %s, got %q", path, out)
			}
			if !strings.Contains(out, `"level":"warn"`) {
				t.Errorf("expected warn level, got %q", out)
			}
		})
	}
}

func TestLoadConfigGoodFileIsQuiet(t *testing.T) {
	logs := captureLogs(t)
	loadConfigFrom(writeConfig(t, "log:\n  level: debug\n"))
	if logs.Len() != 0 {
		t.Errorf("valid config logged %q", logs.String())
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile failed: %v", err)
	}
	if config := loadConfigFrom(path); *config != defaultConfig {
		t.Errorf("reloaded config %+v differs from defaults", *config)
	}
}
