package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagip-ph/sagip-api/schema"
)

type AreaStateTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAreaStateTestSuite(connURI, dbName string) *AreaStateTestSuite {
	return &AreaStateTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AreaStateTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *AreaStateTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestGetAreaStatesFresh tests that a never-written snapshot reads back
// empty rather than failing
func (s *AreaStateTestSuite) TestGetAreaStatesFresh() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	states, err := store.GetAreaStates()
	s.NoError(err)
	s.Len(states, 0)
}

// TestPutAreaStates tests that a put replaces the previous snapshot
// wholesale
func (s *AreaStateTestSuite) TestPutAreaStates() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.PutAreaStates([]schema.AreaState{
		{
			AreaID:    "14.6050,121.0050",
			Severity:  schema.SeverityHigh,
			Score:     7.5,
			Centroid:  *schema.NewGeoJSON(schema.Location{Latitude: 14.605, Longitude: 121.005}),
			Timestamp: 1594000000,
		},
		{
			AreaID:    "14.5547,121.0244",
			Severity:  schema.SeverityMedium,
			Score:     3.2,
			Centroid:  *schema.NewGeoJSON(schema.Location{Latitude: 14.5547, Longitude: 121.0244}),
			Timestamp: 1594000000,
		},
	})
	s.NoError(err)

	states, err := store.GetAreaStates()
	s.NoError(err)
	s.Len(states, 2)

	err = store.PutAreaStates([]schema.AreaState{
		{
			AreaID:    "14.6507,121.1029",
			Severity:  schema.SeverityCritical,
			Score:     13.1,
			Centroid:  *schema.NewGeoJSON(schema.Location{Latitude: 14.6507, Longitude: 121.1029}),
			Timestamp: 1594000300,
		},
	})
	s.NoError(err)

	states, err = store.GetAreaStates()
	s.NoError(err)
	s.Require().Len(states, 1)
	s.Equal("14.6507,121.1029", states[0].AreaID)
	s.Equal(schema.SeverityCritical, states[0].Severity)
	s.Equal(13.1, states[0].Score)
	s.Equal([]float64{121.1029, 14.6507}, states[0].Centroid.Coordinates)
}

// TestPutAreaStatesEmpty tests that an empty ranking clears the snapshot
func (s *AreaStateTestSuite) TestPutAreaStatesEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.PutAreaStates([]schema.AreaState{
		{
			AreaID:    "14.6050,121.0050",
			Severity:  schema.SeverityLow,
			Score:     1.0,
			Centroid:  *schema.NewGeoJSON(schema.Location{Latitude: 14.605, Longitude: 121.005}),
			Timestamp: 1594000000,
		},
	})
	s.NoError(err)

	s.NoError(store.PutAreaStates(nil))

	states, err := store.GetAreaStates()
	s.NoError(err)
	s.Len(states, 0)
}

func TestAreaStateTestSuite(t *testing.T) {
	suite.Run(t, NewAreaStateTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
