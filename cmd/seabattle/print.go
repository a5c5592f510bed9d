package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/engine"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

var flagColor string

var printCmd = &cobra.Command{
	Use:   "print <dump>",
	Short: "Draw a fleet dump as a board",
	Long: `Load a fleet dump ("width height" followed by "size orientation x y"
records) and draw the board.

Without colour the output matches the protocol's "print" command:
1 for a ship cell, * for a hit cell, 0 for water.

Color options:
  auto    - Colour when stdout is a terminal (default)
  always  - Always colour
  never   - Plain digits

Examples:
  seabattle print fleet.txt
  seabattle print fleet.txt --color never > board.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&flagColor, "color", "auto", "Colour output: auto, always, never")
}

func runPrint(_ *cobra.Command, args []string) error {
	color, err := useColor(flagColor)
	if err != nil {
		return err
	}

	game := engine.New(cfg.EngineOptions())
	if err := game.Load(args[0]); err != nil {
		return err
	}
	logger.Debug("dump loaded", "path", args[0], "ships", len(game.Player().Ships()))

	if color {
		fmt.Println(tui.RenderField(game))
		return nil
	}
	return game.PrintField(os.Stdout)
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto", "":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}
