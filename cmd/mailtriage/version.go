package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"mailtriage/internal/llm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serviceName, version)
		fmt.Fprintf(cmd.OutOrStdout(), "  Go:        %s\n", runtime.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "  Providers: %v\n", llm.Providers())
	},
}
