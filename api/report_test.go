package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/api/mocks"
	"github.com/sagip-ph/sagip-api/schema"
)

func TestSubmitReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSagipCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetDevice(gomock.Any()).Return(&schema.Device{
		DeviceID: "device-1",
		Language: "en",
	}, nil).Times(1)

	// the neighborhood already carries a fresh critical report, so the
	// submission grades critical by the recency override
	m.EXPECT().ListRecentReports(gomock.Any()).Return([]schema.IncidentReport{
		testReport(schema.SeverityCritical, time.Hour, 14.6507, 121.1029),
	}, nil).Times(1)

	var saved schema.IncidentReport
	m.EXPECT().SaveReport(gomock.Any()).DoAndReturn(func(r *schema.IncidentReport) error {
		saved = *r
		return nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeDeviceMiddleware())
	router.POST("/", s.submitReport)

	body := `{"latitude": 14.6510, "longitude": 121.1033, "type": "flood", "needs_rescue": true}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	assert.NotEmpty(t, saved.ID, "missing report id")
	assert.Equal(t, schema.SeverityCritical, saved.Severity, "wrong computed severity")
	assert.Equal(t, schema.SourceCommunity, saved.Source, "wrong source")
	assert.Equal(t, "device-1", saved.Reporter, "wrong reporter")
	assert.True(t, saved.NeedsRescue, "needs_rescue not carried")
	if assert.NotNil(t, saved.Location, "missing location") {
		assert.Equal(t, []float64{121.1033, 14.6510}, saved.Location.Coordinates, "wrong coordinates")
	}

	var jResp schema.IncidentReport
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, saved.ID, jResp.ID, "response does not echo the stored report")
	assert.Equal(t, schema.SeverityCritical, jResp.Severity, "wrong response severity")
}

func TestSubmitReportQuietNeighborhood(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSagipCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetDevice(gomock.Any()).Return(&schema.Device{DeviceID: "device-1"}, nil).Times(1)
	m.EXPECT().ListRecentReports(gomock.Any()).Return([]schema.IncidentReport{}, nil).Times(1)
	m.EXPECT().SaveReport(gomock.Any()).DoAndReturn(func(r *schema.IncidentReport) error {
		assert.Equal(t, schema.SeverityLow, r.Severity, "first report in a quiet area must grade low")
		return nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeDeviceMiddleware())
	router.POST("/", s.submitReport)

	body := `{"latitude": 7.0731, "longitude": 125.6128, "type": "flood"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSubmitReportWithoutLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockSagipCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetDevice(gomock.Any()).Return(&schema.Device{DeviceID: "device-1"}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeDeviceMiddleware())
	router.POST("/", s.submitReport)

	body := `{"type": "flood"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidParameters.Code, jResp.Code, "wrong error code")
}

func TestListReports(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ListRecentReports(gomock.Any()).Return([]schema.IncidentReport{
		testReport(schema.SeverityMedium, 3*time.Hour, 14.6091, 121.0223),
		testReport(schema.SeverityHigh, time.Hour, 14.6507, 121.1029),
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listReports)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Reports []schema.IncidentReport `json:"reports"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Reports, 2, "wrong report count")
	assert.Equal(t, schema.SeverityMedium, jResp.Reports[0].Severity, "wrong report order")
}
