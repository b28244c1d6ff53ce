package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sagip-ph/sagip-api/external/cadence"
	"github.com/sagip-ph/sagip-api/external/lightning"
	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/store"
	"github.com/sagip-ph/sagip-api/utils"
)

type lightningCrawler struct {
	mongoStore store.MongoStore
	cadence    *cadence.CadenceClient
	feed       lightning.Feed
}

// Run fetches the recent strikes and stores the cloud to ground ones as
// official reports. Strike ids derive from time and position, so a re-run
// stores no duplicates.
func (c lightningCrawler) Run() {
	strikes, err := c.feed.Strikes()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("strikes from lightning feed")
		return
	}

	saved := 0
	for _, s := range strikes {
		// only cloud to ground strikes endanger people on the ground
		if s.Type != lightning.TypeCloudToGround {
			continue
		}

		loc := schema.Location{Latitude: s.Latitude, Longitude: s.Longitude}
		if !loc.Valid() {
			continue
		}

		report := schema.IncidentReport{
			ID:        fmt.Sprintf("lightning-%d-%.4f-%.4f", s.ObservedAt, s.Latitude, s.Longitude),
			Location:  schema.NewGeoJSON(loc),
			Severity:  lightning.SeverityForStrike(s),
			Timestamp: s.ObservedAt,
			Source:    schema.SourceOfficial,
			Type:      schema.HazardLightning,
		}

		if err := c.mongoStore.SaveReport(&report); nil != err {
			continue
		}
		saved++
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"strikes": len(strikes),
		"saved":   saved,
	}).Debug("data from lightning feed")

	if saved == 0 {
		return
	}

	if err := utils.TriggerAreaUpdate(*c.cadence, context.Background()); nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("trigger area update")
	}
}

// newLightningCrawler - cron job for the lightning strike feed
func newLightningCrawler(mongoStore store.MongoStore, cadenceClient *cadence.CadenceClient, feed lightning.Feed) Cron {
	return &lightningCrawler{
		mongoStore: mongoStore,
		cadence:    cadenceClient,
		feed:       feed,
	}
}
