package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/sagip-ph/sagip-api/consts"
	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/store"
)

// askForRescue is the API for asking rescue from nearby responders
func (s *Server) askForRescue(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Subject     string   `json:"subject"`
		Details     string   `json:"details"`
		ContactInfo string   `json:"contact_info"`
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
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
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.RequestRescue(requester, params.Subject, params.Details, params.ContactInfo, loc.Latitude, loc.Longitude)
	if err != nil {
		if err == store.ErrMultipleRequestMade {
			abortWithEncoding(c, http.StatusForbidden, errorMultipleRequestMade, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// fan out to devices seen near the rescue location, except the
	// requester themself
	if s.background != nil {
		devices, err := s.mongoStore.NearbyDevices(consts.ALERT_DISTANCE_RANGE, loc)
		if err != nil {
			c.Error(err)
		} else {
			targets := make([]string, 0, len(devices))
			for _, d := range devices {
				if d != requester {
					targets = append(targets, d)
				}
			}

			if len(targets) > 0 {
				if _, err := s.background.SendTask(&tasks.Signature{
					Name: "broadcast_new_rescue",
					Args: []tasks.Arg{
						{Type: "string", Value: req.ID.String()},
						{Type: "[]string", Value: targets},
					},
				}); err != nil {
					c.Error(err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, req)
}

// listRescues is the API for listing open rescue requests around the caller
func (s *Server) listRescues(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Latitude  *float64 `form:"latitude" binding:"required"`
		Longitude *float64 `form:"longitude" binding:"required"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rescues, err := s.store.ListRescues(requester, *params.Latitude, *params.Longitude)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rescues": rescues,
	})
}

// answerRescue is the API for answering a rescue request
func (s *Server) answerRescue(c *gin.Context) {
	id := c.Param("rescueID")
	requester := c.GetString("requester")

	if err := s.store.AnswerRescue(requester, id); err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}

		return
	}

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_rescue_accepted",
			Args: []tasks.Arg{
				{Type: "string", Value: id},
			},
		}); err != nil {
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
