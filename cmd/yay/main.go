// Command yay is the CLI shell around the YAY toolchain: it resolves
// input/output formats, walks directories, and writes results, while
// the parsing/formatting/encoding logic itself lives in the yay
// package and its internal pipeline packages.
//
// Grounded on MacroPower-x/cmd/magicschema/main.go for the overall
// cobra wiring shape (RunE closure over a Config, SilenceErrors/
// SilenceUsage, flag registration via the config struct) and on
// spec.md §6 for the flag surface itself.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kriskowal/yay/internal/cli"
)

func main() {
	cfg := cli.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "yay [OPTIONS] [FILE|DIR]",
		Short:         "Parse, reformat, and transcode YAY documents",
		Version:       cli.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return cli.Run(cfg, args)
		},
	}
	rootCmd.SetVersionTemplate("yay {{.Version}}\n")
	cfg.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yay: %v\n", err)
		os.Exit(cli.ExitCodeFor(err))
	}
}
