package pagasa

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/sagip-ph/sagip-api/schema"
)

const defaultURL = "https://publicalert.pagasa.dost.gov.ph/feeds/advisories.json"

var errResponseStatus = fmt.Errorf("response status not ok")

// Advisory - a single severe weather advisory from the PAGASA public
// alert feed
type Advisory struct {
	ID           string  `json:"id"`
	Region       string  `json:"region"`
	Event        string  `json:"event"`
	WarningLevel string  `json:"warning_level"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IssuedAt     int64   `json:"issued_at"`
}

type Feed interface {
	Advisories() ([]Advisory, error)
}

type feed struct {
	url string
}

type jsonResponse struct {
	Advisories []Advisory `json:"advisories"`
}

func (f feed) Advisories() ([]Advisory, error) {
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

	return r.Advisories, nil
}

func New(url string) Feed {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &feed{url: u}
}

// SeverityForWarningLevel maps the PAGASA rainfall warning colors onto the
// report severity scale. Unknown levels count as low.
func SeverityForWarningLevel(level string) schema.Severity {
	switch strings.ToLower(level) {
	case "yellow":
		return schema.SeverityMedium
	case "orange":
		return schema.SeverityHigh
	case "red":
		return schema.SeverityCritical
	default:
		return schema.SeverityLow
	}
}
