package ranking

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/sagip-ph/sagip-api/background"
	"github.com/sagip-ph/sagip-api/external/cadence"
	"github.com/sagip-ph/sagip-api/external/onesignal"
	"github.com/sagip-ph/sagip-api/store"
)

const TaskListName = "sagip-ranking-tasks"

type RankingWorker struct {
	domain             string
	mongo              store.MongoStore
	notificationCenter background.NotificationCenter
}

func NewRankingWorker(domain string, mongo store.MongoStore) *RankingWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &RankingWorker{
		domain:             domain,
		mongo:              mongo,
		notificationCenter: background.NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
	}
}

func (r *RankingWorker) Register() {
	workflow.RegisterWithOptions(r.AreaSeverityUpdateWorkflow, workflow.RegisterOptions{Name: "AreaSeverityUpdateWorkflow"})

	activity.RegisterWithOptions(r.CalculateAreaSeveritiesActivity, activity.RegisterOptions{Name: "CalculateAreaSeveritiesActivity"})
	activity.RegisterWithOptions(r.RefreshAreaStateActivity, activity.RegisterOptions{Name: "RefreshAreaStateActivity"})
	activity.RegisterWithOptions(r.NotifyAreaEscalationActivity, activity.RegisterOptions{Name: "NotifyAreaEscalationActivity"})
}

func (r *RankingWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		r.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
