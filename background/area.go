package background

import (
	"context"

	"github.com/sagip-ph/sagip-api/utils"
)

// BroadcastAreaRefresh is a background job to signal the ranking workflow
// so a fresh report shows up in area severities ahead of the next timer pass
func (m *BackgroundManager) BroadcastAreaRefresh() error {
	return utils.TriggerAreaUpdate(*m.cadence, context.Background())
}
