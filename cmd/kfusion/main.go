// SPDX-License-Identifier: MIT

// Command kfusion runs a multi-omics kernel integration described by a YAML
// configuration and prints the weights, the kernel PCA summary and, when
// enabled, the most influential features.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/kfusion/combine"
	"github.com/katalvlaran/kfusion/fusion"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kfusion",
		Short: "Unsupervised multi-omics kernel integration",
		Long: `kfusion builds one kernel per data block, combines them into a
consensus kernel (equal, STATIS-UMKL, full-UMKL or sparse-UMKL weights),
runs kernel PCA on the result and optionally ranks features by
permutation importance.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newMethodsCmd(),
	)

	return rootCmd
}

// newLogger builds the logger selected by the global flags. Logs go to
// stderr so stdout stays parseable.
func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	switch format {
	case "text":
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kfusion version %s\n", version)

			return nil
		},
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the supported combination methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(combine.Methods())
			}
			for _, m := range combine.Methods() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}

			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the integration described by a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}

			cfg, err := fusion.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("method") {
				cfg.Method, _ = cmd.Flags().GetString("method")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("top") {
				cfg.Importance.Top, _ = cmd.Flags().GetInt("top")
			}
			if imp, _ := cmd.Flags().GetBool("importance"); imp {
				cfg.Importance.Enabled = true
			}

			res, err := fusion.New(log).RunConfig(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			rep, err := fusion.NewReport(res, cfg.Importance.Top)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return rep.WriteJSON(cmd.OutOrStdout())
			}

			return rep.WriteText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("config", "c", "kfusion.yaml", "Path to the YAML run configuration")
	cmd.Flags().String("method", "", "Override the combination method")
	cmd.Flags().Int64("seed", 0, "Override the permutation seed")
	cmd.Flags().Int("top", 0, "Override the number of features reported per block and component")
	cmd.Flags().Bool("importance", false, "Enable permutation importance")

	return cmd
}
