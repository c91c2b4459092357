package garage

type Tier string

const (
	TierElite    Tier = "elite"
	TierHigh     Tier = "high"
	TierBalanced Tier = "balanced"
	TierStandard Tier = "standard"
)

const (
	eliteStatsThreshold    = 240
	highStatsThreshold     = 200
	balancedStatsThreshold = 160
)

var tierColors = map[Tier]string{
	TierElite:    "#ffd700",
	TierHigh:     "#ff4444",
	TierBalanced: "#4444ff",
	TierStandard: "#888888",
}

var tierLabels = map[Tier]string{
	TierElite:    "Elite Performance",
	TierHigh:     "High Performance",
	TierBalanced: "Balanced Performance",
	TierStandard: "Standard Performance",
}

// TierOf classifies a vehicle by total stats. Stable for identical stats.
func TierOf(v Vehicle) Tier {
	total := v.TotalStats()
	switch {
	case total > eliteStatsThreshold:
		return TierElite
	case total > highStatsThreshold:
		return TierHigh
	case total > balancedStatsThreshold:
		return TierBalanced
	default:
		return TierStandard
	}
}

func (t Tier) Label() string {
	return tierLabels[t]
}

// ColorOf prefers the vehicle's explicit color and falls back to the tier
// palette.
func ColorOf(v Vehicle) string {
	if v.Color != "" {
		return v.Color
	}
	return tierColors[TierOf(v)]
}
