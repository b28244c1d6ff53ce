package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sagip-ph/sagip-api/schema"
)

// AreaState - bookkeeping snapshot the ranking worker diffs against
type AreaState interface {
	GetAreaStates() ([]schema.AreaState, error)
	PutAreaStates(states []schema.AreaState) error
}

// GetAreaStates returns the area severities recorded by the last ranking
// pass.
func (m *mongoDB) GetAreaStates() ([]schema.AreaState, error) {
	c := m.client.Database(m.database).Collection(schema.AreaStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{})
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query area states with error: %s", err)
		return nil, err
	}

	states := make([]schema.AreaState, 0)
	for cur.Next(ctx) {
		var state schema.AreaState
		if err := cur.Decode(&state); nil != err {
			return nil, err
		}
		states = append(states, state)
	}

	return states, nil
}

// PutAreaStates swaps the whole snapshot. Area labels move with their
// centroids between passes, so replacing wholesale is simpler than
// matching documents up. Not transactional; the ranking worker is the
// only writer.
func (m *mongoDB) PutAreaStates(states []schema.AreaState) error {
	c := m.client.Database(m.database).Collection(schema.AreaStateCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.DeleteMany(ctx, bson.M{}); nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("clear area states with error: %s", err)
		return err
	}

	if len(states) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(states))
	for _, state := range states {
		docs = append(docs, state)
	}

	if _, err := c.InsertMany(ctx, docs); nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("insert area states with error: %s", err)
		return err
	}

	return nil
}
