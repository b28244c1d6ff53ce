package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagip-ph/sagip-api/schema"
)

var (
	// ErrReportNotFound is returned when a report id matches nothing visible
	ErrReportNotFound = fmt.Errorf("the report does not exist")
)

// IncidentReport - operations for incident reports
type IncidentReport interface {
	SaveReport(r *schema.IncidentReport) error
	ListRecentReports(cutoff int64) ([]schema.IncidentReport, error)
	DeleteReport(id string) error
	ReportCountBySource(cutoff int64) (map[schema.ReportSource]int, error)
}

// SaveReport inserts a report if its id is unseen. Saving an existing id
// changes nothing, so feed crawls can re-run safely and a soft-deleted
// report stays deleted.
func (m *mongoDB) SaveReport(r *schema.IncidentReport) error {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"id": r.ID}
	update := bson.M{"$setOnInsert": r}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); nil != err {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"report_id": r.ID,
			"error":     err,
		}).Error("save incident report")
		return err
	}

	return nil
}

// ListRecentReports returns visible reports observed at or after cutoff,
// oldest first. Clustering walks reports in this order, so membership is
// reproducible for a fixed snapshot.
func (m *mongoDB) ListRecentReports(cutoff int64) ([]schema.IncidentReport, error) {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, matchVisibleSince(cutoff), options.Find().SetSort(bson.M{"ts": 1}))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"cutoff": cutoff,
			"error":  err,
		}).Error("list recent reports")
		return nil, err
	}

	reports := make([]schema.IncidentReport, 0)
	for cur.Next(ctx) {
		var r schema.IncidentReport
		if err := cur.Decode(&r); nil != err {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

// DeleteReport hides a report from every read path. The document stays
// around for audit.
func (m *mongoDB) DeleteReport(id string) error {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"deleted": true}})
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"report_id": id,
			"error":     err,
		}).Error("delete incident report")
		return err
	}

	if result.MatchedCount == 0 {
		return ErrReportNotFound
	}

	return nil
}

// ReportCountBySource counts visible reports per source since cutoff.
func (m *mongoDB) ReportCountBySource(cutoff int64) (map[schema.ReportSource]int, error) {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		aggStageVisibleSince(cutoff),
		aggStageCountBySource(),
	}
	cursor, err := c.Aggregate(ctx, pipeline)
	if nil != err {
		return nil, err
	}

	counts := map[schema.ReportSource]int{}
	for cursor.Next(ctx) {
		var result struct {
			Source schema.ReportSource `bson:"_id"`
			Count  int                 `bson:"count"`
		}
		if err := cursor.Decode(&result); nil != err {
			return nil, err
		}
		counts[result.Source] = result.Count
	}

	return counts, nil
}
