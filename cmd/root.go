package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/pezeshkyar/checkup_backend/cmd/http"
	systemcmd "github.com/pezeshkyar/checkup_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "checkup",
	Short: "Checkup platform backend for clinics and patients.",
	Long: `Checkup is the backend of a medical checkup platform. Clinics author
branching questionnaires, patients walk them, and answers resolve into
interpretations, alerts and referral suggestions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
