package severity

import (
	"math"
	"time"

	"github.com/sagip-ph/sagip-api/schema"
)

// decayHours is the exponential decay constant: a report loses about
// 63% of its contribution every 24 hours.
const decayHours = 24.0

// RecencyWeight returns the time-decay factor for a report observed at ts.
// A report carries its full severity weight at age zero and decays
// exponentially from there. A future timestamp yields a factor above one;
// clock skew between devices and the server is left to age out naturally.
func RecencyWeight(ts int64, now time.Time) float64 {
	ageHours := now.Sub(time.Unix(ts, 0)).Hours()
	return math.Exp(-ageHours / decayHours)
}

// Score sums the recency-discounted severity weights of the reports.
// Reports with an unknown severity level weigh zero and drop out.
func Score(reports []schema.IncidentReport, now time.Time) float64 {
	var total float64
	for _, r := range reports {
		total += r.Severity.Weight() * RecencyWeight(r.Timestamp, now)
	}
	return total
}
