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
	"io"
	"os"

	"github.com/cybrota/avlkit/commands"
	"github.com/spf13/cobra"
)

// runConfig is the configuration read once before a command runs
var runConfig *Config

// prepareRun sets up colours, logging and configuration before any command
// runs. The logger starts at the flag level so problems reading the config
// file are reported, then takes the configured level unless the flag was set.
func prepareRun(w io.Writer, flagLevel string, flagSet bool) *Config {
	InitializeColors()
	initLogger(w, flagLevel)

	config, _ := LoadConfig()
	if !flagSet {
		initLogger(w, config.Log.Level)
	}
	runConfig = config
	return config
}

// currentConfig returns a copy of the configuration commands may modify
func currentConfig() *Config {
	if runConfig == nil {
		config, _ := LoadConfig()
		return config
	}
	c := *runConfig
	return &c
}

// buildIndex applies flag overrides and loads any dataset files into a new index
func buildIndex(cmd *cobra.Command, paths []string) (*Index, *Config, error) {
	config := currentConfig()

	if order, _ := cmd.Flags().GetString("order"); order != "" {
		if !validOrder(order) {
			return nil, nil, fmt.Errorf("unknown key order %q, want %s or %s", order, OrderNatural, OrderLexical)
		}
		config.Keys.Order = order
	}
	if cmd.Flags().Lookup("values") != nil {
		if show, _ := cmd.Flags().GetBool("values"); show {
			config.Display.ShowValues = true
		}
	}

	idx := NewIndex(indexOptionsFrom(config))
	n, err := loadDatasets(idx, paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Int("entries", n).Int("keys", idx.Len()).Int("height", idx.Height()).Str("order", config.Keys.Order).Msg("index ready")
	return idx, config, nil
}

func main() {
	asciiLogo := `
  █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
 ██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
 ███████║██║   ██║██║     █████╔╝ ██║   ██║
 ██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
 ██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
 ╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Self-balancing AVL trees you can load, script, stress and explore [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdLoad = &cobra.Command{
		Use:   "load <file>...",
		Short: "Load datasets and print the key listing",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Load reads key<TAB>value, key=value or bare key lines ('-' reads stdin) and prints the pairs in key order"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := buildIndex(cmd, args)
			if err != nil {
				return err
			}
			fmt.Print(listing(idx))
			return nil
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show <file>...",
		Short: "Draw the tree built from datasets",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Show loads the datasets and draws the tree sideways with each node's balance factor"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := buildIndex(cmd, args)
			if err != nil {
				return err
			}
			fmt.Print(idx.Render())
			return nil
		},
	}
	cmdShow.Flags().Bool("values", false, "print values next to keys")

	var cmdExec = &cobra.Command{
		Use:   "exec <script> [file...]",
		Short: "Run a command script against a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Exec loads the optional datasets, then runs each line of the script ('-' reads stdin)"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := buildIndex(cmd, args[1:])
			if err != nil {
				return err
			}

			script := os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				script = f
			}

			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			res, err := commands.NewManager().RunScript(idx, script, os.Stdout, keepGoing)
			logger.Info().Int("executed", res.Executed).Int("failed", res.Failed).Msg("script finished")
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d script lines failed", res.Failed)
			}
			return nil
		},
	}
	cmdExec.Flags().Bool("keep-going", false, "report failing lines and continue")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run a seeded random workload and check every invariant",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stress fills, churns and drains a tree, validating it after every batch of operations"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := currentConfig()
			opts := StressOptions{
				Keys:     config.Stress.Keys,
				Seed:     config.Stress.Seed,
				Index:    indexOptionsFrom(config),
				Progress: os.Stderr,
			}
			if cmd.Flags().Changed("keys") {
				opts.Keys, _ = cmd.Flags().GetInt("keys")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			opts.Batch, _ = cmd.Flags().GetInt("batch")

			report, err := runStress(opts)
			if err != nil {
				return err
			}
			printStressReport(os.Stdout, report)
			return nil
		},
	}
	cmdStress.Flags().Int("keys", defaultConfig.Stress.Keys, "operations per phase")
	cmdStress.Flags().Int64("seed", defaultConfig.Stress.Seed, "random seed")
	cmdStress.Flags().Int("batch", 0, "operations between invariant checks (0 picks keys/100)")

	var cmdExplore = &cobra.Command{
		Use:   "explore [file...]",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Explore opens a terminal UI to run commands and watch the tree rebalance"),
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := buildIndex(cmd, args)
			if err != nil {
				return err
			}
			return runExplorer(idx)
		},
	}
	cmdExplore.Flags().Bool("values", false, "show values in the tree pane")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show and create the configuration file",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlkit",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			prepareRun(os.Stderr, level, cmd.Flags().Changed("log-level"))
		},
	}
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	for _, c := range []*cobra.Command{cmdLoad, cmdShow, cmdExec, cmdExplore} {
		c.Flags().String("order", "", "key order: natural or lexical (default from config)")
	}

	rootCmd.AddCommand(cmdLoad, cmdShow, cmdExec, cmdStress, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
