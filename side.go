package pmcompare

// Side identifies which of the two compared documents a piece of evidence
// came from.
type Side int

// Side constants.
const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
