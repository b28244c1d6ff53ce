package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/severity"
)

// submitReport is the API for reporting an incident. The caller never
// declares a severity; the report is graded against what the neighborhood
// already looks like.
func (s *Server) submitReport(c *gin.Context) {
	a := c.MustGet("device")
	device, ok := a.(*schema.Device)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
		Type        string   `json:"type" binding:"required"`
		Description string   `json:"description"`
		NeedsRescue bool     `json:"needs_rescue"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	loc := schema.Location{
		Latitude:  *params.Latitude,
		Longitude: *params.Longitude,
	}
	if !loc.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownDeviceLocation)
		return
	}

	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(severity.DefaultTimeWindowHours) * time.Hour).Unix()

	recent, err := s.mongoStore.ListRecentReports(cutoff)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	report := schema.IncidentReport{
		ID:          uuid.New().String(),
		Location:    schema.NewGeoJSON(loc),
		Severity:    severity.ForLocation(recent, loc, now, severity.ResolveRadiusMeters),
		Timestamp:   now.Unix(),
		NeedsRescue: params.NeedsRescue,
		Source:      schema.SourceCommunity,
		Type:        params.Type,
		Description: params.Description,
		Reporter:    device.DeviceID,
	}

	if err := s.mongoStore.SaveReport(&report); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// a failed refresh signal only delays the next ranking pass
	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_area_refresh",
		}); err != nil {
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, report)
}

// listReports is the API serving the map pin layer
func (s *Server) listReports(c *gin.Context) {
	var params struct {
		TimeWindowHours *int64 `form:"time_window_hours"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	windowHours := int64(severity.DefaultTimeWindowHours)
	if params.TimeWindowHours != nil {
		windowHours = clampInt64(*params.TimeWindowHours, minTimeWindowHours, maxTimeWindowHours)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour).Unix()

	reports, err := s.mongoStore.ListRecentReports(cutoff)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
	})
}
