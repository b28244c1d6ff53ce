package severity

import (
	"time"

	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/schema"
)

// ResolveRadiusMeters bounds which reports speak for a probed location.
const ResolveRadiusMeters = 2500.0

// ForLocation derives the severity at a single point from the reports
// within radiusMeters of it. A location with nothing nearby is low.
// Reports without usable coordinates never take part.
func ForLocation(reports []schema.IncidentReport, loc schema.Location, now time.Time, radiusMeters float64) schema.Severity {
	nearby := make([]schema.IncidentReport, 0, len(reports))
	for _, r := range reports {
		p, ok := r.LatLng()
		if !ok {
			continue
		}
		if geo.Distance(p, loc) <= radiusMeters {
			nearby = append(nearby, r)
		}
	}

	if len(nearby) == 0 {
		return schema.SeverityLow
	}

	return Classify(Score(nearby, now), nearby, now)
}
