package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/engine"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

var (
	flagStrategy   string
	flagFleet      string
	flagEnemyFleet string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer in the terminal",
	Long: `Start an interactive match against the computer. Both fleets are
placed by the chosen strategy unless fleet dumps are given.

Controls:
  Arrows/hjkl   - Move the target cursor
  Enter/Space   - Fire
  ?             - Toggle help
  Q/Esc/Ctrl+C  - Quit

Examples:
  seabattle play
  seabattle play --strategy ordered
  seabattle play --fleet mine.txt --enemy-fleet theirs.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Computer strategy: ordered, custom (default from config)")
	playCmd.Flags().StringVar(&flagFleet, "fleet", "", "Load your fleet from a dump")
	playCmd.Flags().StringVar(&flagEnemyFleet, "enemy-fleet", "", "Load the computer's fleet from a dump")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs a terminal; use 'seabattle run' for the protocol")
	}

	kind := engine.StrategyKind(cfg.Strategy)
	if flagStrategy != "" {
		var ok bool
		if kind, ok = engine.ParseStrategyKind(flagStrategy); !ok {
			return fmt.Errorf("unknown strategy %q; run 'seabattle strategies'", flagStrategy)
		}
	}

	match, err := tui.NewMatch(tui.MatchConfig{
		Options:        cfg.EngineOptions(),
		Strategy:       kind,
		FleetPath:      flagFleet,
		EnemyFleetPath: flagEnemyFleet,
	})
	if err != nil {
		return err
	}
	logger.Debug("match ready", "strategy", kind)

	if err := tui.Run(match); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	switch {
	case match.PlayerWon():
		fmt.Println("You win!")
	case match.Over():
		fmt.Println("You lose.")
	}
	return nil
}
