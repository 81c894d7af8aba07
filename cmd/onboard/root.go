package main

import (
	"github.com/aussiebroadwan/onboard/internal/registry/app"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Client onboarding registry for an accounting firm",
	Long: `onboard keeps the firm's client list and greets every new client
with a welcome email. Run "onboard serve" for the HTTP service and
"onboard console" for the terminal front end.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, consoleCmd)
}

// setVersion records the release for the service and the --version flag.
func setVersion(release, full string) {
	if release != "dev" {
		app.BuildVersion = release
	}
	rootCmd.Version = full
}
