package severity

import (
	"sort"
	"time"

	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/schema"
)

// DefaultTimeWindowHours is the trailing window reports stay relevant
// for, one week.
const DefaultTimeWindowHours = 168

// RankAreas clusters the reports observed within the trailing time window
// and returns one aggregate per cluster, most severe score first. Ties
// keep cluster creation order. A limit of zero or below returns every
// area.
func RankAreas(reports []schema.IncidentReport, now time.Time, timeWindowHours int, limit int) []schema.AreaSeverity {
	cutoff := now.Add(-time.Duration(timeWindowHours) * time.Hour).Unix()

	recent := make([]schema.IncidentReport, 0, len(reports))
	for _, r := range reports {
		if r.Timestamp >= cutoff {
			recent = append(recent, r)
		}
	}

	clusters := ClusterReports(recent, ClusterRadiusMeters)

	rankings := make([]schema.AreaSeverity, 0, len(clusters))
	for _, c := range clusters {
		rankings = append(rankings, summarize(c, now))
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Score > rankings[j].Score
	})

	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}

	return rankings
}

func summarize(c *Cluster, now time.Time) schema.AreaSeverity {
	points := make([]schema.Location, 0, len(c.Reports))
	counts := map[schema.Severity]int{}
	rescueCount := 0
	var latest int64

	for _, r := range c.Reports {
		if p, ok := r.LatLng(); ok {
			points = append(points, p)
		}
		counts[r.Severity]++
		if r.NeedsRescue {
			rescueCount++
		}
		if r.Timestamp > latest {
			latest = r.Timestamp
		}
	}

	score := Score(c.Reports, now)

	return schema.AreaSeverity{
		ID:                  c.ID,
		Severity:            Classify(score, c.Reports, now),
		Score:               score,
		ReportCount:         len(c.Reports),
		SeverityCounts:      counts,
		RescueCount:         rescueCount,
		LastReportTimestamp: latest,
		Centroid:            c.Centroid,
		Bounds:              geo.BoundingRing(points),
	}
}
