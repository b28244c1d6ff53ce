package schema

import (
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sagip-ph/sagip-api/schema"
)

// report is a representative incident document. The same struct travels as
// json on the HTTP surface, msgpack in task payloads and bson in mongo.
var report = &schema.IncidentReport{
	ID:          "pagasa-ncr-1598313600",
	Location:    schema.NewGeoJSON(schema.Location{Latitude: 14.5995, Longitude: 120.9842}),
	Severity:    schema.SeverityHigh,
	Timestamp:   1598313600,
	Source:      schema.SourceOfficial,
	Type:        schema.HazardFlood,
	Description: "PAGASA orange rainfall warning for NCR",
}

func BenchmarkDecodeJSON(b *testing.B) {
	data, err := json.Marshal(report)
	if err != nil {
		b.Fatal(err)
	}

	var r schema.IncidentReport
	for n := 0; n < b.N; n++ {
		if err := json.Unmarshal(data, &r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeJSON(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := json.Marshal(report); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeMsgPack(b *testing.B) {
	data, err := msgpack.Marshal(report)
	if err != nil {
		b.Fatal(err)
	}

	var r schema.IncidentReport
	for n := 0; n < b.N; n++ {
		if err := msgpack.Unmarshal(data, &r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeMsgPack(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := msgpack.Marshal(report); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeBSON(b *testing.B) {
	data, err := bson.Marshal(report)
	if err != nil {
		b.Fatal(err)
	}

	var r schema.IncidentReport
	for n := 0; n < b.N; n++ {
		if err := bson.Unmarshal(data, &r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeBSON(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := bson.Marshal(report); err != nil {
			b.Fatal(err)
		}
	}
}
