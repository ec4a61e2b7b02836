package domain

// FareRule is a priced (start, end, fare-type) tuple used for reference
// pricing. The triple is unique; both stations must exist.
// Fare rules are reference data only; trip creation does not consult them.
type FareRule struct {
	ID             int64
	StartStationID int64
	EndStationID   int64
	FareType       string
	FareAmount     float64
}

// FareRuleDetail is a FareRule joined with both station names,
// as returned by the fare rule list endpoint.
type FareRuleDetail struct {
	FareRule
	StartStationName string
	EndStationName   string
}

// FareRulePatch is a partial update for a fare rule.
// The station pair is immutable; only type and amount can change.
type FareRulePatch struct {
	FareType   *string
	FareAmount *float64
}

// IsZero reports whether the patch would change nothing.
func (p FareRulePatch) IsZero() bool {
	return p.FareType == nil && p.FareAmount == nil
}
