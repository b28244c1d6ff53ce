package store

import (
	"go.mongodb.org/mongo-driver/bson"
)

func matchVisibleSince(cutoff int64) bson.M {
	return bson.M{
		"ts": bson.M{
			"$gte": cutoff,
		},
		"deleted": bson.M{
			"$ne": true,
		},
	}
}

func aggStageVisibleSince(cutoff int64) bson.M {
	return bson.M{
		"$match": matchVisibleSince(cutoff),
	}
}

func aggStageCountBySource() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id": "$source",
			"count": bson.M{
				"$sum": 1,
			},
		},
	}
}
