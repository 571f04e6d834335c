// SPDX-License-Identifier: MIT

// Command wgraph inspects and converts weighted graph snapshots.
//
//	wgraph stats graph.wg
//	wgraph connected graph.json
//	wgraph dist graph.yaml 2 9
//	wgraph path graph.hcl 2 9
//	wgraph convert graph.hcl graph.wg
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/internal/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "wgraph",
		Short:         "Inspect and convert weighted graph snapshots",
		Long:          `wgraph loads undirected weighted graphs (binary, JSON, YAML or HCL) and answers connectivity and shortest-path queries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.statsCmd(),
		a.connectedCmd(),
		a.distCmd(),
		a.pathCmd(),
		a.convertCmd(),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wgraph:", err)
		os.Exit(1)
	}
}
