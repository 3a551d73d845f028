package entitlements

import (
	"math"

	"github.com/deepthansh-m/WhisperNet/api/models"
)

// Radius limits. Free-tier viewers always get DefaultRadiusKm; premium
// viewers choose within [MinRadiusKm, MaxRadiusKm] in RadiusStepKm steps.
const (
	DefaultRadiusKm = 2.0
	MinRadiusKm     = 0.5
	MaxRadiusKm     = 5.0
	RadiusStepKm    = 0.5
)

// AllowedThemes returns the post themes the tier may use.
func AllowedThemes(isPremium bool) []models.Theme {
	if isPremium {
		return []models.Theme{models.ThemeDefault, models.ThemeSoftBlue, models.ThemeFieryRed}
	}
	return []models.Theme{models.ThemeDefault}
}

// AllowedReactionKinds returns the reaction kinds the tier may send.
func AllowedReactionKinds(isPremium bool) []models.ReactionKind {
	if isPremium {
		return models.AllReactionKinds
	}
	return models.BaseReactionKinds
}

// ThemeAllowed reports whether the tier may post with the given theme.
func ThemeAllowed(theme models.Theme, isPremium bool) bool {
	for _, t := range AllowedThemes(isPremium) {
		if t == theme {
			return true
		}
	}
	return false
}

// ReactionAllowed reports whether the tier may send the given kind.
func ReactionAllowed(kind models.ReactionKind, isPremium bool) bool {
	return !kind.Extended() || isPremium
}

// RadiusBounds returns the selectable radius range for the tier. The free
// tier's range is a single point.
func RadiusBounds(isPremium bool) (minKm, maxKm float64) {
	if isPremium {
		return MinRadiusKm, MaxRadiusKm
	}
	return DefaultRadiusKm, DefaultRadiusKm
}

// NormalizeRadius maps a requested radius onto what the tier is entitled
// to: free viewers are pinned to the default regardless of the request,
// premium requests are snapped to the nearest step and clamped to the
// bounds. A zero or negative request yields the default for both tiers.
func NormalizeRadius(requestedKm float64, isPremium bool) float64 {
	if !isPremium {
		return DefaultRadiusKm
	}
	if requestedKm <= 0 || math.IsNaN(requestedKm) {
		return DefaultRadiusKm
	}
	r := math.Round(requestedKm/RadiusStepKm) * RadiusStepKm
	if r < MinRadiusKm {
		r = MinRadiusKm
	}
	if r > MaxRadiusKm {
		r = MaxRadiusKm
	}
	return r
}
