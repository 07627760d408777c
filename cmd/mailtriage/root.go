package main

import (
	"github.com/spf13/cobra"

	"mailtriage/internal/config"
	"mailtriage/internal/logging"
)

const serviceName = "mailtriage"

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Email triage with language-model classification and reply drafting",
	Long: `mailtriage classifies incoming emails as REQUIRES_ACTION or NO_ACTION_NEEDED
and drafts a short suggested reply in the email's language.

Configuration comes from MAILTRIAGE_* environment variables
(OPENAI_API_KEY is accepted for the API key).`,
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		logging.Setup(loaded.Log)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
