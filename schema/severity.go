package schema

// Severity - four-level incident severity scale
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityWeights is the contribution of a single report of each level to
// an aggregate score, before recency discounting. Unknown levels weigh zero.
var SeverityWeights = map[Severity]float64{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

var severityRanks = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

func (s Severity) Weight() float64 {
	return SeverityWeights[s]
}

// Rank returns the position of s on the severity scale for ordering
// comparisons, 0 for unknown levels.
func (s Severity) Rank() int {
	return severityRanks[s]
}
