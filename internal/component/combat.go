// internal/component/combat.go
package component

// Health holds hit points; 0 <= Current <= Max.
type Health struct {
	Current int
	Max     int
}

// Fraction is Current/Max, the value health bars display.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// HealthBand buckets a health fraction for bar colouring.
type HealthBand int

const (
	BandLow HealthBand = iota
	BandMedium
	BandHigh
)

// BandOf returns High above 0.6, Medium above 0.3, Low otherwise.
func BandOf(fraction float64) HealthBand {
	switch {
	case fraction > 0.6:
		return BandHigh
	case fraction > 0.3:
		return BandMedium
	default:
		return BandLow
	}
}
