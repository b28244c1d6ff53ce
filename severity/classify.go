package severity

import (
	"time"

	"github.com/sagip-ph/sagip-api/schema"
)

const (
	criticalScoreThreshold = 12
	highScoreThreshold     = 6
	mediumScoreThreshold   = 3
)

const (
	criticalOverrideAge = 6 * time.Hour
	highOverrideAge     = 12 * time.Hour
	mediumOverrideAge   = 24 * time.Hour
)

// Classify maps an aggregate score to a severity label. A single fresh
// severe report overrides the score thresholds: the scan walks the
// reports in input order and the first one that is critical within 6
// hours, high within 12 or medium within 24 decides the label on its
// own, even when a stronger report appears later in the slice.
func Classify(score float64, reports []schema.IncidentReport, now time.Time) schema.Severity {
	for _, r := range reports {
		age := now.Sub(time.Unix(r.Timestamp, 0))
		switch {
		case r.Severity == schema.SeverityCritical && age < criticalOverrideAge:
			return schema.SeverityCritical
		case r.Severity == schema.SeverityHigh && age < highOverrideAge:
			return schema.SeverityHigh
		case r.Severity == schema.SeverityMedium && age < mediumOverrideAge:
			return schema.SeverityMedium
		}
	}

	switch {
	case score >= criticalScoreThreshold:
		return schema.SeverityCritical
	case score >= highScoreThreshold:
		return schema.SeverityHigh
	case score >= mediumScoreThreshold:
		return schema.SeverityMedium
	default:
		return schema.SeverityLow
	}
}
