// seabattle is a sea battle engine driven by a line-oriented command
// protocol, with a few helper commands around it.
//
// Usage:
//
//	seabattle                 - Serve the command protocol on stdin/stdout
//	seabattle run             - Same as above
//	seabattle play            - Play against the computer in the terminal
//	seabattle print <dump>    - Draw a fleet dump as a board
//	seabattle capacity        - Check ship quotas against the capacity heuristic
//	seabattle strategies      - List the available strategies
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--log-level <level> - Override the configured log level
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea battle engine speaking a line-oriented protocol",
	Long: `seabattle is a sea battle game engine. Without a subcommand it reads
protocol commands from stdin and answers on stdout, one line each.

Available commands:
  run         - Serve the command protocol (default)
  play        - Play against the computer in the terminal
  print       - Draw a fleet dump as a board
  capacity    - Check ship quotas against the capacity heuristic
  strategies  - List the available strategies

Examples:
  seabattle < commands.txt
  seabattle play --strategy ordered
  seabattle print fleet.txt --color always
  seabattle capacity --width 10 --height 10 --count 4=1 --count 1=4`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runProtocol,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(strategiesCmd)
}

// setup loads .env, the config file and the logger.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	logger = newLogger(os.Stderr, cfg.LogLevel())
	return nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "seabattle",
		Level:           level,
	})
}
