// Command gooey lays out frames with the gooey engine and inspects the
// resulting render command stream.
package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gooey "github.com/duanebester/gooey-sub004"
	"github.com/duanebester/gooey-sub004/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gooey",
		Short:         "Inspect gooey layout output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gooey version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gooey "+version)
		},
	}
}

func newDumpCmd() *cobra.Command {
	var (
		configPath    string
		width, height float32
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Lay out the built-in demo frame and print its render commands as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if width > 0 {
				cfg.Viewport.Width = width
			}
			if height > 0 {
				cfg.Viewport.Height = height
			}

			logger := zap.NewNop()
			if cfg.Debug {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
			}

			c := gooey.New(append(cfg.Options(), gooey.WithLogger(logger))...)
			c.BeginFrame(cfg.Viewport.Width, cfg.Viewport.Height)
			if err := buildDemo(c); err != nil {
				return fmt.Errorf("declaring demo frame: %w", err)
			}
			cmds, err := c.EndFrame()
			if err != nil {
				return fmt.Errorf("computing layout: %w", err)
			}
			logger.Info("frame computed",
				zap.Int("commands", len(cmds)),
				zap.Float32("width", cfg.Viewport.Width),
				zap.Float32("height", cfg.Viewport.Height),
			)

			out, err := json.MarshalIndent(cmds, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().Float32VarP(&width, "width", "W", 0, "viewport width (overrides config)")
	cmd.Flags().Float32VarP(&height, "height", "H", 0, "viewport height (overrides config)")
	return cmd
}
