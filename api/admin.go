package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/sagip-ph/sagip-api/severity"
	"github.com/sagip-ph/sagip-api/store"
)

// adminDeleteReport is an internal only api to moderate away an abusive
// report. The next ranking pass stops counting it.
func (s *Server) adminDeleteReport(c *gin.Context) {
	id := c.Param("reportID")

	if err := s.mongoStore.DeleteReport(id); err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_area_refresh",
		}); err != nil {
			c.Error(err)
		}
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminReportStats is an internal only api for a quick look at ingest
// volume per source
func (s *Server) adminReportStats(c *gin.Context) {
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

	cutoff := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour).Unix()

	counts, err := s.mongoStore.ReportCountBySource(cutoff)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"time_window_hours": windowHours,
		"sources":           counts,
	})
}

// adminExpireRescues is an internal only api to trigger the task to
// check expired rescue requests
func (s *Server) adminExpireRescues(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_rescues",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
