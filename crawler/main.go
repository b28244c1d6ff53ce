package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagip-ph/sagip-api/external/cadence"
	"github.com/sagip-ph/sagip-api/external/lightning"
	"github.com/sagip-ph/sagip-api/external/pagasa"
	"github.com/sagip-ph/sagip-api/store"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 15 * time.Second
)

type Cron interface {
	Run()
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sagip")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	cadenceClient := cadence.NewClient()

	crawlerPagasa := newPagasaCrawler(mStore, cadenceClient, pagasa.New(viper.GetString("feed.pagasa")))
	crawlerLightning := newLightningCrawler(mStore, cadenceClient, lightning.New(viper.GetString("feed.lightning")))

	// one pass at startup so a fresh deployment gets pins right away
	crawlerPagasa.Run()
	crawlerLightning.Run()

	c := cron.New()
	if _, err := c.AddFunc("*/10 * * * *", crawlerPagasa.Run); err != nil {
		log.Panic(err)
	}
	if _, err := c.AddFunc("2-59/5 * * * *", crawlerLightning.Run); err != nil {
		log.Panic(err)
	}
	c.Start()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, os.Interrupt, syscall.SIGTERM)
	<-sc

	log.Info("Crawler is preparing to shutdown")
	<-c.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}
}
