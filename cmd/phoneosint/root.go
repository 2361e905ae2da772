package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for phoneosint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phoneosint",
		Short: "Passive OSINT lookup for phone numbers",
		Long: `phoneosint parses a phone number into structured metadata (country,
line type, carrier, time zones) using an offline numbering-plan database,
optionally enriches it with the NumVerify API, and prints a report with
search links for manual review.

Set NUMVERIFY_API_KEY (in the environment, a .env file or the config file)
to enable the NumVerify lookup.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewLookupCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
