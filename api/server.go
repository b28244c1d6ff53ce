package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/logmodule"
	"github.com/sagip-ph/sagip-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SagipCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server

	// reverse geocoder for area display names
	locationResolver geo.LocationResolver
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey,
	background *machinery.Server,
	locationResolver geo.LocationResolver) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:            store.NewSagipStore(ormDB, mongoStore),
		mongoStore:       mongoStore,
		jwtPrivateKey:    jwtKey,
		background:       background,
		locationResolver: locationResolver,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.clientVersionGateway())

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	deviceRoute := apiRoute.Group("/devices")
	{
		deviceRoute.POST("", s.deviceRegister)
	}

	deviceRoute.Use(s.recognizeDeviceMiddleware())
	{
		deviceRoute.GET("/me", s.deviceDetail)
		deviceRoute.DELETE("/me", s.deviceDelete)
	}

	// routes below require a registered device
	apiRoute.Use(s.recognizeDeviceMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.submitReport)
		reportRoute.GET("", s.listReports)
	}

	areaRoute := apiRoute.Group("/areas")
	{
		areaRoute.GET("", s.listAreas)
		areaRoute.GET("/severity", s.areaSeverity)
	}

	rescueRoute := apiRoute.Group("/rescues")
	{
		rescueRoute.POST("", s.askForRescue)
		rescueRoute.GET("", s.listRescues)
		rescueRoute.PATCH("/:rescueID", s.answerRescue)
	}

	// the public map feed drives embeddable widgets, browsers included
	mapRoute := r.Group("/map")
	mapRoute.Use(logmodule.Ginrus("Map"))
	mapRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		mapRoute.GET("/areas", s.listAreas)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.DELETE("/reports/:reportID", s.adminDeleteReport)
		secretRoute.GET("/report-stats", s.adminReportStats)
		secretRoute.POST("/expire-rescues", s.adminExpireRescues)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping postgres
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	// Ping mongo
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Sagip 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
