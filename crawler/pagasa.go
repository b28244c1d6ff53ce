package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/sagip-ph/sagip-api/consts"
	"github.com/sagip-ph/sagip-api/external/cadence"
	"github.com/sagip-ph/sagip-api/external/pagasa"
	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/store"
	"github.com/sagip-ph/sagip-api/utils"
)

type pagasaCrawler struct {
	mongoStore store.MongoStore
	cadence    *cadence.CadenceClient
	feed       pagasa.Feed
}

// Run fetches the current advisories and stores them as official reports.
// Advisory ids are stable across crawls, so a re-run stores no duplicates.
func (c pagasaCrawler) Run() {
	advisories, err := c.feed.Advisories()
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("advisories from PAGASA")
		return
	}

	saved := 0
	for _, a := range advisories {
		report, err := advisoryReport(a)
		if nil != err {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"region": a.Region,
				"error":  err,
			}).Warn("skip advisory")
			continue
		}

		if err := c.mongoStore.SaveReport(report); nil != err {
			continue
		}
		saved++
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"advisories": len(advisories),
		"saved":      saved,
	}).Debug("data from PAGASA")

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

// advisoryReport converts an advisory into an official report. Region-wide
// advisories come without coordinates and are pinned at the region center.
func advisoryReport(a pagasa.Advisory) (*schema.IncidentReport, error) {
	loc := schema.Location{Latitude: a.Latitude, Longitude: a.Longitude}
	if a.Latitude == 0 && a.Longitude == 0 {
		lat, lng, err := consts.PhRegionCenter(a.Region)
		if nil != err {
			return nil, err
		}
		loc = schema.Location{Latitude: lat, Longitude: lng}
	}

	if !loc.Valid() {
		return nil, fmt.Errorf("invalid advisory location")
	}

	id := a.ID
	if id == "" {
		key, err := consts.PhRegionKey(a.Region)
		if nil != err {
			return nil, err
		}
		id = fmt.Sprintf("%s-%d", key, a.IssuedAt)
	}

	hazard := a.Event
	if hazard == "" {
		hazard = schema.HazardFlood
	}

	return &schema.IncidentReport{
		ID:          fmt.Sprintf("pagasa-%s", id),
		Location:    schema.NewGeoJSON(loc),
		Severity:    pagasa.SeverityForWarningLevel(a.WarningLevel),
		Timestamp:   a.IssuedAt,
		Source:      schema.SourceOfficial,
		Type:        hazard,
		Description: fmt.Sprintf("PAGASA %s warning for %s", a.WarningLevel, a.Region),
	}, nil
}

// newPagasaCrawler - cron job for the PAGASA advisory feed
func newPagasaCrawler(mongoStore store.MongoStore, cadenceClient *cadence.CadenceClient, feed pagasa.Feed) Cron {
	return &pagasaCrawler{
		mongoStore: mongoStore,
		cadence:    cadenceClient,
		feed:       feed,
	}
}
