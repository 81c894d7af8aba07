package main

import (
	"fmt"

	"github.com/aussiebroadwan/onboard/internal/registry/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the registry HTTP service",
	Long: `Run the registry HTTP service. Configuration comes from the environment:
PORT, DATABASE_DRIVER, DATABASE_FILE, DATABASE_URL, RESEND_API_KEY,
RESEND_FROM_EMAIL, TEST_EMAIL, LOG_LEVEL and LOG_FORMAT among others.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
