package engine

// ShotResult is the outcome of a single shot.
type ShotResult int

const (
	ShotUndefined ShotResult = iota - 1
	ShotMiss
	ShotHit
	ShotKill
)

// ParseShotResult maps the wire strings "miss", "hit" and "kill".
// Anything else yields ShotUndefined.
func ParseShotResult(s string) ShotResult {
	switch s {
	case "miss":
		return ShotMiss
	case "hit":
		return ShotHit
	case "kill":
		return ShotKill
	default:
		return ShotUndefined
	}
}

// String returns the wire form of the result.
func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotKill:
		return "kill"
	default:
		return "undefined"
	}
}
