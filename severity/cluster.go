package severity

import (
	"fmt"

	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/schema"
)

// ClusterRadiusMeters is the greedy clustering join distance.
const ClusterRadiusMeters = 2500.0

// Cluster is a transient proximity grouping of reports. Membership is
// input-order dependent: each report joins the first cluster, in creation
// order, whose running centroid is within the join radius.
type Cluster struct {
	ID       string
	Centroid schema.Location
	Reports  []schema.IncidentReport

	latSum float64
	lngSum float64
}

func (c *Cluster) add(r schema.IncidentReport, loc schema.Location) {
	c.Reports = append(c.Reports, r)
	c.latSum += loc.Latitude
	c.lngSum += loc.Longitude

	n := float64(len(c.Reports))
	c.Centroid = schema.Location{
		Latitude:  c.latSum / n,
		Longitude: c.lngSum / n,
	}
	c.ID = AreaID(c.Centroid)
}

// AreaID derives the display identifier of an area from its centroid.
// The label moves with the centroid, so it is not stable across runs.
func AreaID(centroid schema.Location) string {
	return fmt.Sprintf("%.4f,%.4f", centroid.Latitude, centroid.Longitude)
}

// ClusterReports groups reports into proximity clusters in a single
// greedy pass. The centroid is a running mean, so a trail of reports can
// chain into one long cluster as the centroid drifts along it. Reports
// without usable coordinates are dropped.
func ClusterReports(reports []schema.IncidentReport, radiusMeters float64) []*Cluster {
	clusters := make([]*Cluster, 0)

	for _, r := range reports {
		loc, ok := r.LatLng()
		if !ok {
			continue
		}

		var target *Cluster
		for _, c := range clusters {
			if geo.Distance(c.Centroid, loc) <= radiusMeters {
				target = c
				break
			}
		}

		if target == nil {
			target = &Cluster{}
			clusters = append(clusters, target)
		}
		target.add(r, loc)
	}

	return clusters
}
