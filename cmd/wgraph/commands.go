// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/algorithms"
	"github.com/katalvlaran/wgraph/persist"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print node, edge and component counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			st := alg.Graph().Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:        %d\n", st.NodeCount)
			fmt.Fprintf(out, "edges:        %d\n", st.EdgeCount)
			fmt.Fprintf(out, "isolated:     %d\n", st.IsolatedNodes)
			fmt.Fprintf(out, "components:   %d\n", len(alg.Components()))
			fmt.Fprintf(out, "total weight: %g\n", st.TotalWeight)
			fmt.Fprintf(out, "revision:     %d\n", st.Revision)
			fmt.Fprintf(out, "connected:    %t\n", alg.IsConnected())

			return nil
		},
	}
}

func (a *app) connectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connected <file>",
		Short: "Print whether the graph is connected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), alg.IsConnected())

			return nil
		},
	}
}

func (a *app) distCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist <file> <src> <dest>",
		Short: "Print the shortest-path distance, or -1",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest, err := parseKeys(args[1], args[2])
			if err != nil {
				return err
			}
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			d, err := alg.Distance(src, dest)
			if err != nil {
				a.log.Debug("no distance", zap.Int("src", src), zap.Int("dest", dest), zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d, 'g', -1, 64))

			return nil
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <file> <src> <dest>",
		Short: "Print a shortest path as 'a -> b -> c', or 'no path'",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest, err := parseKeys(args[1], args[2])
			if err != nil {
				return err
			}
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			path, err := alg.Path(src, dest)
			if err != nil {
				a.log.Debug("no path", zap.Int("src", src), zap.Int("dest", dest), zap.Error(err))
				fmt.Fprintln(cmd.OutOrStdout(), "no path")

				return nil
			}
			parts := make([]string, len(path))
			for i, n := range path {
				parts[i] = strconv.Itoa(n.Key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " -> "))

			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a graph in another format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := persist.ParseFormat(format)
			if err != nil {
				return err
			}
			alg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := persist.Save(args[1], alg.Graph(), persist.WithFormat(out), persist.WithLogger(a.log)); err != nil {
				return err
			}
			a.log.Info("converted", zap.String("in", args[0]), zap.String("out", args[1]))

			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format (binary, json, yaml); default by extension")

	return cmd
}

// load reads file using the configured snapshot format and binds it.
func (a *app) load(file string) (*algorithms.Algorithms, error) {
	f, err := a.cfg.Snapshot.PersistFormat()
	if err != nil {
		return nil, err
	}
	alg := algorithms.New(nil, algorithms.WithLogger(a.log), algorithms.WithSnapshotFormat(f))
	if err := alg.LoadErr(file); err != nil {
		return nil, err
	}

	return alg, nil
}

func parseKeys(src, dest string) (int, int, error) {
	s, err := strconv.Atoi(src)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid src key %q: %w", src, err)
	}
	d, err := strconv.Atoi(dest)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dest key %q: %w", dest, err)
	}

	return s, d, nil
}
