package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/anqa_gateway/cmd/http"
	systemcmd "github.com/Alijeyrad/anqa_gateway/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "anqa",
	Short: "Anqa HTTP service scaffold with Cloud Trace-correlated request logging.",
	Long: `Anqa is a small HTTP service scaffold whose core is per-request trace
propagation: every request gets a trace identity (Cloud Trace header format)
and a context-bound structured logger, so all log lines emitted while
handling a request correlate with that request without parameter threading.`,
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
