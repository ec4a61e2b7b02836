package domain

// CardType is a named fare-multiplier category (e.g. Student, Senior).
// TypeName is globally unique. BaseFareMultiplier must be >= 0.
type CardType struct {
	ID                 int64
	TypeName           string
	BaseFareMultiplier float64
	Description        string
}

// CardTypePatch is a partial update for a card type.
type CardTypePatch struct {
	TypeName           *string
	BaseFareMultiplier *float64
	Description        *string
}

// IsZero reports whether the patch would change nothing.
func (p CardTypePatch) IsZero() bool {
	return p.TypeName == nil && p.BaseFareMultiplier == nil && p.Description == nil
}
