// alignbench runs alignment benchmarks: JSON scenario files in, a
// classification backend's predicted labels compared against the
// aligned answers, accuracy out.
//
// Usage:
//
//	alignbench evaluate  [--scenarios=<dir>] [--backend=<name>] [--out=<file>]
//	alignbench scenarios list|validate [--scenarios=<dir>]
//	alignbench analyze   [--results=<file>]
//	alignbench runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alignbench/internal/config"
	"alignbench/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cfg is the resolved configuration; command flags override it.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "alignbench",
	Short: "Alignment benchmark harness for scenario-based model evaluation",
	Long: "Alignbench loads JSON benchmark scenarios, feeds each description\n" +
		"through a text-classification backend, and scores the predicted\n" +
		"labels against the expected aligned responses.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
		if rootFlags.configPath != "" {
			c, err := config.LoadFromPath(rootFlags.configPath)
			if err != nil {
				return err
			}
			cfg = *c
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to config file (YAML/JSON)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// override returns flagVal when set, otherwise the config value.
func override(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}
