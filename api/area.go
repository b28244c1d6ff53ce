package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/severity"
)

const (
	minTimeWindowHours = 1
	maxTimeWindowHours = 720

	minAreaLimit     = 1
	maxAreaLimit     = 100
	defaultAreaLimit = 100
)

// listAreas is the API behind the hotspot map: rank every active area by
// severity score within the requested trailing window.
func (s *Server) listAreas(c *gin.Context) {
	var params struct {
		TimeWindowHours *int64 `form:"time_window_hours"`
		Limit           *int64 `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	windowHours := int64(severity.DefaultTimeWindowHours)
	if params.TimeWindowHours != nil {
		windowHours = clampInt64(*params.TimeWindowHours, minTimeWindowHours, maxTimeWindowHours)
	}

	limit := int64(defaultAreaLimit)
	if params.Limit != nil {
		limit = clampInt64(*params.Limit, minAreaLimit, maxAreaLimit)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour).Unix()

	reports, err := s.mongoStore.ListRecentReports(cutoff)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAreaSeverity, err)
		return
	}

	areas := severity.RankAreas(reports, now, int(windowHours), int(limit))
	s.decorateAreaAddresses(areas)

	c.JSON(http.StatusOK, gin.H{
		"areas": areas,
	})
}

// areaSeverity is the API probing the severity at a single location,
// applying the same rule a submitted report would be graded with.
func (s *Server) areaSeverity(c *gin.Context) {
	var params struct {
		Latitude  *float64 `form:"latitude" binding:"required"`
		Longitude *float64 `form:"longitude" binding:"required"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	loc := schema.Location{
		Latitude:  *params.Latitude,
		Longitude: *params.Longitude,
	}
	if !loc.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(severity.DefaultTimeWindowHours) * time.Hour).Unix()

	reports, err := s.mongoStore.ListRecentReports(cutoff)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAreaSeverity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"severity": severity.ForLocation(reports, loc, now, severity.ResolveRadiusMeters),
	})
}

// decorateAreaAddresses annotates area centroids with display names.
// Failures leave coordinates only; the ranking response never waits on a
// failed geocode.
func (s *Server) decorateAreaAddresses(areas []schema.AreaSeverity) {
	if s.locationResolver == nil {
		return
	}

	for i, area := range areas {
		resolved, err := s.locationResolver.GetPoliticalInfo(area.Centroid)
		if err != nil {
			log.WithError(err).WithField("area_id", area.ID).Warn("resolve area address")
			continue
		}
		areas[i].Centroid = resolved
	}
}

func clampInt64(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
