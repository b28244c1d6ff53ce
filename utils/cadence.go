package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/sagip-ph/sagip-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/sagip-ph/sagip-api/background/ranking`
const TaskListName = "sagip-ranking-tasks"

// AreaWorkflowID pins the single long-running ranking workflow. Signals and
// timer passes all land on this one execution.
const AreaWorkflowID = "area-severity-state"

// TriggerAreaUpdate is a helper function to send a signal to
// trigger the workflow to recompute area severities.
func TriggerAreaUpdate(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		AreaWorkflowID, "areaCheckSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           AreaWorkflowID,
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "AreaSeverityUpdateWorkflow")
	return err
}
