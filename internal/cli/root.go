// Package cli implements the bjj command line tool.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCommand builds the bjj command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bjj",
		Short: "Inspect and manipulate BabyJubjub points.",
		Long: `Construct BabyJubjub points from decimal, hex or raw byte arguments,
multiply them by scalars, compress them and build Pedersen commitments.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !getFlag(cmd, "version") {
				return cmd.Help()
			}

			fmt.Fprint(cmd.OutOrStdout(), "bjj ")
			if Version != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s", info.Main.Version)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "(unknown version)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	rootCmd.PersistentFlags().Bool("raw", false, "read arguments as hex encoded big-endian byte buffers")

	rootCmd.AddCommand(
		newPointCmd(),
		newMulCmd(),
		newCompressCmd(),
		newDecompressCmd(),
		newCommitCmd(),
		newBatchCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}
