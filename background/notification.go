package background

import (
	"context"

	"github.com/sagip-ph/sagip-api/external/onesignal"
)

type NotificationCenter interface {
	NotifyDevicesByText(deviceIDs []string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyDevicesByTemplate(deviceIDs []string, templateID string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// deviceFilter is a onesignal tag filter matching a single device. Devices
// tag themselves with their device id on push registration.
func deviceFilter(deviceID string) map[string]string {
	return map[string]string{
		"field":    "tag",
		"key":      "device_id",
		"relation": "=",
		"value":    deviceID,
	}
}

// NotifyDevicesByText sends raw headings, contents and data to devices.
// The filter list is flushed every 100 devices to stay under the
// onesignal filter limit.
func (o *OnesignalNotificationCenter) NotifyDevicesByText(deviceIDs []string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, d := range deviceIDs {
		if i%100 == 0 {
			filters = append(filters, deviceFilter(d))
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				deviceFilter(d))
		}
		if i%100 == 99 {
			req := &onesignal.NotificationRequest{
				AppID:          o.appID,
				Headings:       headings,
				Contents:       contents,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := o.client.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}
	// send rest of notification
	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}

// NotifyDevicesByTemplate sends a onesignal template to devices with the
// same batching as NotifyDevicesByText.
func (o *OnesignalNotificationCenter) NotifyDevicesByTemplate(deviceIDs []string, templateID string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, d := range deviceIDs {
		if i%100 == 0 {
			filters = append(filters, deviceFilter(d))
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				deviceFilter(d))
		}
		if i%100 == 99 {
			req := &onesignal.NotificationRequest{
				AppID:          o.appID,
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := o.client.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}
	// send rest of notification
	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}
