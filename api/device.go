package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagip-ph/sagip-api/schema"
)

// deviceRegister is the API for registering a new device
func (s *Server) deviceRegister(c *gin.Context) {
	logger := log.WithField("api", "deviceRegister")
	deviceID := c.GetString("requester")

	var params struct {
		PushToken string `json:"push_token"`
		Platform  string `json:"platform"`
		Language  string `json:"language"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	d, err := s.store.RegisterDevice(deviceID, params.PushToken, params.Platform, params.Language)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": d,
	})
}

// deviceDetail is the API to query the caller's device
func (s *Server) deviceDetail(c *gin.Context) {
	a := c.MustGet("device")
	device, ok := a.(*schema.Device)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": device,
	})
}

// deviceDelete is the API to remove a device from our service
func (s *Server) deviceDelete(c *gin.Context) {
	deviceID := c.GetString("requester")

	if err := s.store.DeleteDevice(deviceID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
