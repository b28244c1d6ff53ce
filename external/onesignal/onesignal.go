package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix       = "onesignal"
	defaultEndpoint = "https://onesignal.com/api/v1"
)

// NotificationRequest - request body of the create-notification API
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// SendNotificationError carries the error strings returned by the
// notification API. The API responds 200 with an errors array when a
// request is well-formed but undeliverable.
type SendNotificationError struct {
	Errors []string `json:"errors"`
}

func (e *SendNotificationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

const errAllPlayersNotSubscribed = "All included players are not subscribed"

// IsErrAllPlayersNotSubscribed checks whether an error from SendNotification
// only says no targeted player is subscribed. Pushes to stale devices fail
// this way and are safe to ignore.
func IsErrAllPlayersNotSubscribed(err error) bool {
	e, ok := err.(*SendNotificationError)
	if !ok {
		return false
	}
	return len(e.Errors) == 1 && e.Errors[0] == errAllPlayersNotSubscribed
}

type OneSignalClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		endpoint: defaultEndpoint,
		apiKey:   viper.GetString("onesignal.key"),
		client:   client,
	}
}

// SendNotification submits one create-notification request
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if nil != err {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/notifications", bytes.NewReader(body))
	if nil != err {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	var result struct {
		ID         string   `json:"id"`
		Recipients int      `json:"recipients"`
		Errors     []string `json:"errors"`
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return fmt.Errorf("invalid notification response: %s", b)
	}

	if len(result.Errors) > 0 {
		return &SendNotificationError{Errors: result.Errors}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification request failed with status %d", resp.StatusCode)
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"id":         result.ID,
		"recipients": result.Recipients,
	}).Debug("notification sent")

	return nil
}
