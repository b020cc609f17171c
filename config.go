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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type KeysConfig struct {
	Order string `yaml:"order"`
}

type DisplayConfig struct {
	ShowValues  bool `yaml:"show_values"`
	ShowBalance bool `yaml:"show_balance"`
}

type LookupConfig struct {
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	BloomSize   uint          `yaml:"bloom_size"`
	BloomHashes uint          `yaml:"bloom_hashes"`
}

type StressConfig struct {
	Keys int   `yaml:"keys"`
	Seed int64 `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Display DisplayConfig `yaml:"display"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Stress  StressConfig  `yaml:"stress"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Order: OrderNatural,
	},
	Display: DisplayConfig{
		ShowValues:  false,
		ShowBalance: true,
	},
	Lookup: LookupConfig{
		CacheTTL:    10 * time.Minute,
		BloomSize:   100000,
		BloomHashes: 5,
	},
	Stress: StressConfig{
		Keys: 10000,
		Seed: 1,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// LoadConfig reads ~/.avlkit.yaml. Any problem reading it yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath), nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// loadConfigFrom decodes over a copy of the defaults so keys missing from
// the file keep their default values.
func loadConfigFrom(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", configPath).Msg("cannot read config file, using defaults")
		return defaults()
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		logger.Warn().Err(err).Str("path", configPath).Msg("malformed config file, using defaults")
		return defaults()
	}
	if !validOrder(config.Keys.Order) {
		logger.Warn().Str("path", configPath).Str("order", config.Keys.Order).Msgf("unknown keys.order, using %s", defaultConfig.Keys.Order)
		config.Keys.Order = defaultConfig.Keys.Order
	}
	return config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config := loadConfigFrom(configPath)

	fmt.Printf("🔧 avlkit Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔑 %sKeys:%s\n", Green, Reset)
	orderDesc := "Numbers compare by value, so 9 sorts before 10"
	if config.Keys.Order == OrderLexical {
		orderDesc = "Plain byte-wise string order, so 10 sorts before 9"
	}
	fmt.Printf("  • %sorder%s: %s\n", Green, Reset, config.Keys.Order)
	fmt.Printf("    %s\n\n", orderDesc)

	fmt.Printf("🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_values%s: %t\n", Green, Reset, config.Display.ShowValues)
	fmt.Printf("  • %sshow_balance%s: %t\n\n", Green, Reset, config.Display.ShowBalance)

	fmt.Printf("🔍 %sLookup:%s\n", Green, Reset)
	fmt.Printf("  • %scache_ttl%s: %s\n", Green, Reset, config.Lookup.CacheTTL)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Lookup.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Lookup.BloomHashes)

	fmt.Printf("🏋 %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %skeys%s: %d\n", Green, Reset, config.Stress.Keys)
	fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Stress.Seed)

	fmt.Printf("📜 %sLog:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	fmt.Printf("💡 To compare keys as plain strings, edit %s:\n", configPath)
	fmt.Printf("   keys:\n     order: lexical\n")
}
