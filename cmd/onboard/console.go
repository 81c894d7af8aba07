package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/onboard/internal/console"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080"

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the terminal front end",
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func init() {
	consoleCmd.Flags().String("api", defaultAPIURL, "registry base URL (env ONBOARD_API_URL)")
	consoleCmd.Flags().Bool("debug", false, "write debug logs to debug.log")

	_ = viper.BindPFlag("api", consoleCmd.Flags().Lookup("api"))
	_ = viper.BindEnv("api", "ONBOARD_API_URL")
}

func runConsole(cmd *cobra.Command, args []string) error {
	// Query the terminal background before the program owns stdin.
	_ = lipgloss.HasDarkBackground()

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		f, err := tea.LogToFile("debug.log", "onboard")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	api := registrysdk.NewSDKClient(viper.GetString("api"))

	p := tea.NewProgram(console.New(api), tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}
