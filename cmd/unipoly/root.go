package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at link time, e.g. -ldflags "-X main.Version=v1.0.0".
var Version string

func newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:          "unipoly",
		Short:        "Arithmetic on univariate polynomials.",
		Long:         "Evaluate, derive, integrate, add and multiply univariate polynomials with integer, floating-point or complex coefficients.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "unipoly %s\n", version())
				return
			}
			cmd.Help() //nolint:errcheck
		},
	}

	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("kind", "k", "float", "coefficient kind: int, float or complex")

	rootCmd.AddCommand(
		newEvalCmd(),
		newDeriveCmd(),
		newIntegrateCmd(),
		newAddCmd(),
		newMulCmd(),
		newDigestCmd(),
	)

	return rootCmd
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return r
}
