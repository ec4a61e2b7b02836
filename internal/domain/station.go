package domain

// Station is a stop on the network, referenced by trips (entry/exit) and
// fare rules (start/end). StationName is globally unique; LineColor may be
// empty for stations not yet assigned to a line.
type Station struct {
	ID          int64
	StationName string
	LineColor   string
}

// StationPatch is a partial update for a station.
type StationPatch struct {
	StationName *string
	LineColor   *string
}

// IsZero reports whether the patch would change nothing.
func (p StationPatch) IsZero() bool {
	return p.StationName == nil && p.LineColor == nil
}
