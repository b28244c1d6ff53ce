package lightning

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/sagip-ph/sagip-api/schema"
)

const defaultURL = "https://lightning.sagip.ph/api/v1/strikes"

// TypeCloudToGround is the only strike type dangerous enough to report
const TypeCloudToGround = "cloud_to_ground"

var errResponseStatus = fmt.Errorf("response status not ok")

// Strike - a single detected lightning strike
type Strike struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Type       string  `json:"type"`
	ObservedAt int64   `json:"observed_at"`
}

type Feed interface {
	Strikes() ([]Strike, error)
}

type feed struct {
	url string
}

type jsonResponse struct {
	Strikes []Strike `json:"strikes"`
}

func (f feed) Strikes() ([]Strike, error) {
	resp, err := http.Get(f.url)
	if nil != err {
		return nil, err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errResponseStatus
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	return r.Strikes, nil
}

func New(url string) Feed {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &feed{url: u}
}

// SeverityForStrike grades a strike for the report severity scale.
// Cloud-to-ground strikes endanger people outdoors; intracloud ones are
// only a storm hint.
func SeverityForStrike(s Strike) schema.Severity {
	if s.Type == TypeCloudToGround {
		return schema.SeverityHigh
	}

	return schema.SeverityLow
}
