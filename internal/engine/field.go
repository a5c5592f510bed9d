package engine

import (
	"math"
	"math/big"
)

// ShipKinds is the number of ship sizes (1 to 4 cells).
const ShipKinds = 4

// Field holds the board configuration and the alive-ship counters.
type Field struct {
	Width  uint64
	Height uint64
	// Counts[i] is the quota of ships of size i+1.
	Counts [ShipKinds]uint64

	OwnAlive   int64
	EnemyAlive int64
}

// TotalShips returns the sum of all quotas, saturating on overflow.
func (f Field) TotalShips() uint64 {
	var total uint64
	for _, c := range f.Counts {
		if total+c < total {
			return math.MaxUint64
		}
		total += c
	}
	return total
}

// CheckCapacity is the admission heuristic for SetCount. It estimates how
// many ships of size n fit in the outer ring of a height x width board,
// max((height/d + (width-1)/d)*2, width/d + (height-1)/d*2) with d = n+1,
// then peels a 4-cell border off both dimensions and repeats for whatever
// is left. A ring that fits nothing stops the search; a board down to one
// row or column admits max(height/d, width/d). It is a heuristic, not a
// packing proof.
//
// The rings are summed in closed form with arbitrary precision, so boards
// of any size answer in constant time.
func CheckCapacity(n, value, height, width int64) bool {
	if n < 1 || n > ShipKinds {
		return false
	}
	d := n + 1

	rings := ringCount(height, width)
	if rings == 0 {
		return max(height/d, width/d) >= value
	}

	need := big.NewInt(value)
	total := ringTotal(d, rings, height, width)
	if need.Cmp(total) <= 0 {
		return true
	}

	// Quotients only shrink inward, so an empty innermost ring means
	// the search stopped before reaching the core.
	last := rings - 1
	if (height-4*last)/d == 0 && (width-4*last)/d == 0 {
		return false
	}

	coreH := height - 4*last - 4
	coreW := width - 4*last - 4
	rest := need.Sub(need, total)
	return big.NewInt(max(coreH/d, coreW/d)).Cmp(rest) >= 0
}

// ringCount returns how many 4-cell borders can be peeled before the
// board is down to one row or column.
func ringCount(height, width int64) int64 {
	m := min(height, width)
	if m <= 1 {
		return 0
	}
	rings := (m - 1) / 4
	if (m-1)%4 != 0 {
		rings++
	}
	return rings
}

// ringTotal sums the ring estimates of the outer rings rings. Moving d
// rings inward lowers every quotient by exactly 4, so within one residue
// class of the ring index mod d the first form drops by 16 per step and
// the second by 12. The first form leads for a prefix of each class.
func ringTotal(d, rings, height, width int64) *big.Int {
	total := new(big.Int)
	for r := int64(0); r < d && r < rings; r++ {
		h, w := height-4*r, width-4*r
		count := (rings-r-1)/d + 1

		first := new(big.Int).Add(big.NewInt(h/d), big.NewInt((w-1)/d))
		first.Lsh(first, 1)
		second := new(big.Int).Lsh(big.NewInt((h-1)/d), 1)
		second.Add(second, big.NewInt(w/d))

		lead := int64(0)
		if first.Cmp(second) >= 0 {
			gap := new(big.Int).Sub(first, second)
			gap.Rsh(gap, 2)
			if gap.Cmp(big.NewInt(count-1)) >= 0 {
				lead = count
			} else {
				lead = gap.Int64() + 1
			}
		}

		total.Add(total, seriesSum(first, 16, 0, lead))
		total.Add(total, seriesSum(second, 12, lead, count))
	}
	return total
}

// seriesSum returns the sum of first - step*j for j in [from, to).
func seriesSum(first *big.Int, step, from, to int64) *big.Int {
	if to <= from {
		return new(big.Int)
	}
	sum := new(big.Int).Mul(first, big.NewInt(to-from))

	tri := new(big.Int).Mul(big.NewInt(to), big.NewInt(to-1))
	tri.Sub(tri, new(big.Int).Mul(big.NewInt(from), big.NewInt(from-1)))
	tri.Rsh(tri, 1)
	tri.Mul(tri, big.NewInt(step))

	return sum.Sub(sum, tri)
}

// toInt64 clamps a board quantity into the signed range used by the
// capacity arithmetic and the coordinate space.
func toInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
