package ranking

import (
	"context"
	"math"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/sagip-ph/sagip-api/background"
	"github.com/sagip-ph/sagip-api/consts"
	"github.com/sagip-ph/sagip-api/external/onesignal"
	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/severity"
)

// CalculateAreaSeveritiesActivity ranks every hotspot cluster from the
// report snapshot of the trailing default window
func (r *RankingWorker) CalculateAreaSeveritiesActivity(ctx context.Context) ([]schema.AreaSeverity, error) {
	logger := activity.GetLogger(ctx)

	now := time.Now()
	cutoff := now.Add(-severity.DefaultTimeWindowHours * time.Hour).Unix()

	reports, err := r.mongo.ListRecentReports(cutoff)
	if err != nil {
		return nil, err
	}

	areas := severity.RankAreas(reports, now, severity.DefaultTimeWindowHours, 0)

	logger.Info("Ranked area severities.",
		zap.Int("reports", len(reports)),
		zap.Int("areas", len(areas)))

	return areas, nil
}

// RefreshAreaStateActivity replaces the stored per-area states with the
// fresh ranking and returns the areas whose severity went up. Area ids move
// with their centroids between passes, so a fresh area is matched against
// the nearest previous state within the cluster radius rather than by id.
func (r *RankingWorker) RefreshAreaStateActivity(ctx context.Context, areas []schema.AreaSeverity) ([]schema.AreaSeverity, error) {
	logger := activity.GetLogger(ctx)

	previous, err := r.mongo.GetAreaStates()
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	escalated := make([]schema.AreaSeverity, 0)
	states := make([]schema.AreaState, 0, len(areas))

	for _, area := range areas {
		states = append(states, schema.AreaState{
			AreaID:    area.ID,
			Severity:  area.Severity,
			Score:     area.Score,
			Centroid:  *schema.NewGeoJSON(area.Centroid),
			Timestamp: now,
		})

		if prev, ok := matchPreviousState(previous, area.Centroid); ok {
			if area.Severity.Rank() > prev.Severity.Rank() {
				logger.Debug("Area severity escalated",
					zap.String("areaID", area.ID),
					zap.Any("old", prev.Severity),
					zap.Any("new", area.Severity))
				escalated = append(escalated, area)
			}
			continue
		}

		// a first-seen area alerts only when it already enters at high
		// or critical
		if area.Severity.Rank() >= schema.SeverityHigh.Rank() {
			escalated = append(escalated, area)
		}
	}

	if err := r.mongo.PutAreaStates(states); err != nil {
		return nil, err
	}

	logger.Info("Refreshed area states.",
		zap.Int("areas", len(states)),
		zap.Int("escalated", len(escalated)))

	return escalated, nil
}

// matchPreviousState returns the stored state with the nearest centroid
// within the cluster radius, if any.
func matchPreviousState(states []schema.AreaState, centroid schema.Location) (schema.AreaState, bool) {
	var best schema.AreaState
	bestDistance := math.MaxFloat64

	for _, s := range states {
		if len(s.Centroid.Coordinates) != 2 {
			continue
		}

		d := geo.Distance(centroid, schema.Location{
			Latitude:  s.Centroid.Coordinates[1],
			Longitude: s.Centroid.Coordinates[0],
		})
		if d < bestDistance {
			best = s
			bestDistance = d
		}
	}

	return best, bestDistance <= severity.ClusterRadiusMeters
}

// NotifyAreaEscalationActivity pages devices recently seen near each
// escalated area
func (r *RankingWorker) NotifyAreaEscalationActivity(ctx context.Context, areas []schema.AreaSeverity) error {
	logger := activity.GetLogger(ctx)

	for _, area := range areas {
		devices, err := r.mongo.NearbyDevices(consts.ALERT_DISTANCE_RANGE, area.Centroid)
		if err != nil {
			return err
		}

		if len(devices) == 0 {
			logger.Info("No devices near escalated area.", zap.String("areaID", area.ID))
			continue
		}

		headings, contents, err := background.AreaEscalationMessage(area)
		if err != nil {
			logger.Error("can not generate area escalation message", zap.Error(err))
			return err
		}

		if err := r.notificationCenter.NotifyDevicesByText(devices,
			headings, contents,
			map[string]interface{}{
				"notification_type": "AREA_SEVERITY_ESCALATED",
				"area_id":           area.ID,
				"severity":          area.Severity,
			},
		); err != nil {
			if !onesignal.IsErrAllPlayersNotSubscribed(err) {
				return err
			}
			logger.Warn("no subscribed devices near escalated area", zap.String("areaID", area.ID))
		}
	}

	return nil
}
