package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/sagip-ph/sagip-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sagip")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS sagip`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO sagip").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Device{},
		&schema.RescueRequest{},
	).Error; err != nil {
		panic(err)
	}

	// one open rescue request per requester at a time
	if err := db.Model(schema.RescueRequest{}).Where(fmt.Sprintf("state = '%s'", schema.RESCUE_PENDING)).
		AddUniqueIndex("rescue_request_unique_if_pending", "requester").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
