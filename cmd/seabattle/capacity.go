package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/engine"
)

var (
	flagWidth  uint64
	flagHeight uint64
	flagCounts []string
	flagPlace  bool
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Check ship quotas against the capacity heuristic",
	Long: `Apply ship quotas to a board the way "set count" does and report which
ones the capacity heuristic admits. With --place, also run the placement
algorithm to see whether the admitted fleet really fits.

Quotas are given as SIZE=COUNT, sizes 1 to 4. Sizes not listed keep the
configured quota.

Examples:
  seabattle capacity --count 4=2
  seabattle capacity --width 4 --height 2 --count 1=4 --place`,
	Args: cobra.NoArgs,
	RunE: runCapacity,
}

func init() {
	capacityCmd.Flags().Uint64Var(&flagWidth, "width", 0, "Board width (default from config)")
	capacityCmd.Flags().Uint64Var(&flagHeight, "height", 0, "Board height (default from config)")
	capacityCmd.Flags().StringArrayVar(&flagCounts, "count", nil, "Quota as SIZE=COUNT, repeatable")
	capacityCmd.Flags().BoolVar(&flagPlace, "place", false, "Also try to place the fleet")
}

func runCapacity(_ *cobra.Command, _ []string) error {
	quotas, err := parseQuotas(flagCounts)
	if err != nil {
		return err
	}

	opts := cfg.EngineOptions()
	if flagWidth != 0 {
		opts.Width = flagWidth
	}
	if flagHeight != 0 {
		opts.Height = flagHeight
	}

	// Quotas are checked one at a time against the configured board, so
	// start from an empty fleet.
	game := engine.New(opts)
	game.Create(engine.RoleMaster)
	for n := 1; n <= engine.ShipKinds; n++ {
		game.SetCount(n, 0)
	}

	fmt.Printf("board %dx%d\n", game.GetWidth(), game.GetHeight())
	for n := engine.ShipKinds; n >= 1; n-- {
		want := opts.Counts[n-1]
		if q, ok := quotas[n]; ok {
			want = q
		}
		if want == 0 {
			continue
		}
		verdict := "ok"
		if !game.SetCount(n, want) {
			verdict = "failed"
		}
		fmt.Printf("size %d x%d: %s\n", n, want, verdict)
	}

	if !flagPlace {
		return nil
	}
	if err := game.Start(); err != nil {
		fmt.Printf("placement: failed (%v)\n", err)
		return nil
	}
	fmt.Printf("placement: ok, %d ship(s)\n", len(game.Player().Ships()))
	return nil
}

// parseQuotas turns SIZE=COUNT pairs into a map keyed by size.
func parseQuotas(pairs []string) (map[int]uint64, error) {
	out := make(map[int]uint64, len(pairs))
	for _, p := range pairs {
		size, count, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("bad quota %q: want SIZE=COUNT", p)
		}
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 || n > engine.ShipKinds {
			return nil, fmt.Errorf("bad quota %q: size must be 1 to %d", p, engine.ShipKinds)
		}
		v, err := strconv.ParseUint(count, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad quota %q: %w", p, err)
		}
		out[n] = v
	}
	return out, nil
}
