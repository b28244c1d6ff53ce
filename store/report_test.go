package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagip-ph/sagip-api/schema"
)

// reportBaseTS pins report fixtures to a fixed moment so query cutoffs in
// this suite never depend on the wall clock.
const reportBaseTS = int64(1594000000)

var reportFixtures = []interface{}{
	schema.IncidentReport{
		ID:        "report-old",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 14.5995, Longitude: 120.9842}),
		Severity:  schema.SeverityMedium,
		Timestamp: reportBaseTS - 100000,
		Source:    schema.SourceCommunity,
		Type:      schema.HazardFlood,
	},
	schema.IncidentReport{
		ID:        "report-mid",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 14.6091, Longitude: 121.0223}),
		Severity:  schema.SeverityHigh,
		Timestamp: reportBaseTS - 7200,
		Source:    schema.SourceOfficial,
		Type:      schema.HazardFlood,
	},
	schema.IncidentReport{
		ID:          "report-new",
		Location:    schema.NewGeoJSON(schema.Location{Latitude: 14.6507, Longitude: 121.1029}),
		Severity:    schema.SeverityCritical,
		Timestamp:   reportBaseTS - 3600,
		NeedsRescue: true,
		Source:      schema.SourceCommunity,
		Type:        schema.HazardLandslide,
	},
	schema.IncidentReport{
		ID:        "report-hidden",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 14.5547, Longitude: 121.0244}),
		Severity:  schema.SeverityLow,
		Timestamp: reportBaseTS - 1800,
		Source:    schema.SourceCommunity,
		Type:      schema.HazardFlood,
		Deleted:   true,
	},
}

type ReportTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewReportTestSuite(connURI, dbName string) *ReportTestSuite {
	return &ReportTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ReportTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ReportTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.ReportCollection).InsertMany(ctx, reportFixtures); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *ReportTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestDeleteReport tests if a deleted report is hidden but kept on disk and
// deleting an unknown id is reported
func (s *ReportTestSuite) TestDeleteReport() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.SaveReport(&schema.IncidentReport{
		ID:        "report-delete-me",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 14.6, Longitude: 121.0}),
		Severity:  schema.SeverityLow,
		Timestamp: reportBaseTS - 900000,
		Source:    schema.SourceCommunity,
		Type:      schema.HazardFlood,
	})
	s.NoError(err)

	s.NoError(store.DeleteReport("report-delete-me"))

	var deleted schema.IncidentReport
	err = s.testDatabase.Collection(schema.ReportCollection).FindOne(context.Background(), bson.M{
		"id": "report-delete-me",
	}).Decode(&deleted)
	s.NoError(err)
	s.True(deleted.Deleted)

	s.Equal(ErrReportNotFound, store.DeleteReport("report-never-saved"))
}

// TestListRecentReports tests the cutoff filter, the soft-delete filter and
// the ascending order of the returned snapshot
func (s *ReportTestSuite) TestListRecentReports() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	reports, err := store.ListRecentReports(reportBaseTS - 10000)
	s.NoError(err)
	s.Len(reports, 2)

	s.Equal("report-mid", reports[0].ID)
	s.Equal("report-new", reports[1].ID)

	s.Equal(schema.SeverityHigh, reports[0].Severity)
	s.Equal(schema.SourceOfficial, reports[0].Source)
	s.Require().NotNil(reports[0].Location)
	s.Equal([]float64{121.0223, 14.6091}, reports[0].Location.Coordinates)

	s.True(reports[1].NeedsRescue)
}

func (s *ReportTestSuite) TestReportCountBySource() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	counts, err := store.ReportCountBySource(reportBaseTS - 10000)
	s.NoError(err)
	s.Equal(1, counts[schema.SourceCommunity])
	s.Equal(1, counts[schema.SourceOfficial])
}

// TestSaveReport tests that saving the same id twice keeps the first
// document untouched
func (s *ReportTestSuite) TestSaveReport() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	first := schema.IncidentReport{
		ID:        "report-upsert",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 14.6, Longitude: 121.0}),
		Severity:  schema.SeverityLow,
		Timestamp: reportBaseTS,
		Source:    schema.SourceCommunity,
		Type:      schema.HazardFlood,
	}
	s.NoError(store.SaveReport(&first))

	second := first
	second.Severity = schema.SeverityCritical
	s.NoError(store.SaveReport(&second))

	count, err := s.testDatabase.Collection(schema.ReportCollection).CountDocuments(context.Background(), bson.M{
		"id": "report-upsert",
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	var saved schema.IncidentReport
	err = s.testDatabase.Collection(schema.ReportCollection).FindOne(context.Background(), bson.M{
		"id": "report-upsert",
	}).Decode(&saved)
	s.NoError(err)
	s.Equal(schema.SeverityLow, saved.Severity)
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, NewReportTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
