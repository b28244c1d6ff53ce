package background

const (
	BROADCAST_NEW_RESCUE   = "2f78feb6-7e17-4431-95ed-b8bd39361d9e"
	NOTIFY_RESCUE_ACCEPTED = "b07c2d8e-4cc1-4f5a-ae5f-7a25d26c6b8b"
)

// BroadcastNewRescue is a background job to page devices recently seen near
// a fresh rescue request
func (m *BackgroundManager) BroadcastNewRescue(rescueID string, deviceIDs []string) error {
	return m.notificationCenter.NotifyDevicesByTemplate(deviceIDs, BROADCAST_NEW_RESCUE, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_RESCUE",
		"rescue_id":         rescueID,
	})
}

// NotifyRescueAccepted is a background job to tell a requester that a
// responder took the request
func (m *BackgroundManager) NotifyRescueAccepted(rescueID string) error {
	req, err := m.store.GetRescue(rescueID)
	if err != nil {
		return err
	}

	return m.notificationCenter.NotifyDevicesByTemplate([]string{req.Requester}, NOTIFY_RESCUE_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_RESCUE_ACCEPTED",
		"rescue_id":         rescueID,
	})
}

// ExpireRescueRequests is a background job to close out pending rescue
// requests past their 24 hour window
func (m *BackgroundManager) ExpireRescueRequests() error {
	return m.store.ExpireRescues()
}
