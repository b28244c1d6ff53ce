package ranking

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/sagip-ph/sagip-api/schema"
)

const AreaCheckInterval = 5 * time.Minute

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// AreaSeverityUpdateWorkflow recomputes the ranked area severities from the
// live report snapshot, refreshes the per-area bookkeeping and pages devices
// near areas whose severity went up. Each pass runs on a timer or early on
// a report-submission signal, then continues as new.
func (r *RankingWorker) AreaSeverityUpdateWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "areaCheckSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, AreaCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically area severity updates")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger area severity updates by signal")
	})

	selector.Select(ctx)

	var areas []schema.AreaSeverity
	if err := workflow.ExecuteActivity(ctx, r.CalculateAreaSeveritiesActivity).Get(ctx, &areas); err != nil {
		logger.Error("Fail to calculate area severities.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.AreaSeverityUpdateWorkflow)
	}

	var escalated []schema.AreaSeverity
	if err := workflow.ExecuteActivity(ctx, r.RefreshAreaStateActivity, areas).Get(ctx, &escalated); err != nil {
		logger.Error("Fail to refresh area states.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.AreaSeverityUpdateWorkflow)
	}

	if len(escalated) > 0 {
		if err := workflow.ExecuteActivity(ctx, r.NotifyAreaEscalationActivity, escalated).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify devices for area escalation", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, r.AreaSeverityUpdateWorkflow)
}
