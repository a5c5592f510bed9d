package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a fleet dump from path into the current player, creating a
// slave player first if there is none. If the file cannot be opened the
// game is left as it was.
func (g *Game) Load(path string) error {
	if g.player == nil {
		g.Create(RoleSlave)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	return g.LoadFrom(f)
}

// LoadFrom reads "width height" followed by "size orientation x y"
// records until the input is exhausted. Records with an unknown
// orientation are skipped. After loading, the quotas and both alive
// counters reflect the player's fleet.
func (g *Game) LoadFrom(r io.Reader) error {
	if g.player == nil {
		g.Create(RoleSlave)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	dims, err := readFields(sc, 2)
	if err != nil {
		return fmt.Errorf("load dimensions: %w", err)
	}
	width, werr := strconv.ParseUint(dims[0], 10, 64)
	height, herr := strconv.ParseUint(dims[1], 10, 64)
	if werr != nil || herr != nil {
		return fmt.Errorf("load dimensions %q: %w", dims, ErrBadRecord)
	}
	g.SetWidth(width)
	g.SetHeight(height)

	var loadErr error
	for {
		rec, err := readFields(sc, 4)
		if err == io.EOF {
			break
		}
		if err != nil {
			loadErr = fmt.Errorf("load ship: %w", err)
			break
		}

		ship, ok, err := parseShipRecord(rec)
		if err != nil {
			loadErr = fmt.Errorf("load ship %q: %w", rec, err)
			break
		}
		if ok {
			g.player.AddShip(ship)
		}
	}

	g.syncFleetCounters()
	return loadErr
}

// readFields reads n whitespace-separated tokens. It returns io.EOF when
// the input ends before the first token, ErrBadRecord when it ends midway.
func readFields(sc *bufio.Scanner, n int) ([]string, error) {
	out := make([]string, 0, n)
	for len(out) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			if len(out) == 0 {
				return nil, io.EOF
			}
			return nil, ErrBadRecord
		}
		out = append(out, sc.Text())
	}
	return out, nil
}

func parseShipRecord(rec []string) (*Ship, bool, error) {
	size, err := strconv.ParseUint(rec[0], 10, 31)
	if err != nil {
		return nil, false, ErrBadRecord
	}
	x, err := strconv.ParseUint(rec[2], 10, 63)
	if err != nil {
		return nil, false, ErrBadRecord
	}
	y, err := strconv.ParseUint(rec[3], 10, 63)
	if err != nil {
		return nil, false, ErrBadRecord
	}
	if len(rec[1]) != 1 {
		return nil, false, nil
	}
	o, ok := ParseOrientation(rec[1][0])
	if !ok {
		return nil, false, nil
	}

	return NewShip(C(int64(x), int64(y)), int(size), o), true, nil
}

// syncFleetCounters derives the quotas and alive counters from the
// ships currently registered.
func (g *Game) syncFleetCounters() {
	ships := g.player.Ships()

	var counts [ShipKinds]uint64
	for _, s := range ships {
		if s.Size() >= 1 && s.Size() <= ShipKinds {
			counts[s.Size()-1]++
		}
	}
	g.field.Counts = counts
	g.field.OwnAlive = int64(len(ships))
	g.field.EnemyAlive = int64(len(ships))
}

// Dump writes the board size and the fleet to path, creating a slave
// player first if there is none. Nothing is written if the file cannot
// be created.
func (g *Game) Dump(path string) error {
	if g.player == nil {
		g.Create(RoleSlave)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump %s: %w", path, err)
	}

	if err := g.DumpTo(f); err != nil {
		f.Close()
		return fmt.Errorf("dump %s: %w", path, err)
	}
	return f.Close()
}

// DumpTo writes the dump format to w.
func (g *Game) DumpTo(w io.Writer) error {
	if g.player == nil {
		g.Create(RoleSlave)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.field.Width, g.field.Height); err != nil {
		return err
	}
	if err := g.player.DumpShips(bw); err != nil {
		return err
	}
	return bw.Flush()
}
