package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/arkhe/internal/config"
	"github.com/aretw0/arkhe/internal/logging"
	"github.com/aretw0/arkhe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	render tui.RenderFunc
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: logging.NewNop(),
		render: tui.Plain,
	}

	rootCmd := &cobra.Command{
		Use:           "arkhe",
		Short:         "Arkhe composes typed handovers over a hypergraph of nodes",
		Long:          `Arkhe models nodes holding typed state and handovers that map one node's state into a new value. Handovers compose into new handovers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(
		newDemoCmd(a),
		newComposeCmd(a),
		newGraphCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	a.render = tui.RendererFor(cmd.OutOrStdout())
	a.logger.Debug("configuration loaded", "path", path, "log_level", cfg.LogLevel)
	return nil
}

// print renders markdown and writes it to w.
func (a *app) print(w io.Writer, markdown string) error {
	out, err := a.render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
