package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sagip-ph/sagip-api/schema"
)

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   schema.Geometry        `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// ImportPhilippineBoundary loads a PSA administrative boundary file into
// the boundary collection. Features carry the region name in ADM1_EN and
// the province name in ADM2_EN.
func ImportPhilippineBoundary(client *mongo.Client, dbName, geoJSONFile string) error {
	var result GeoJSON

	file, err := os.Open(geoJSONFile)
	if err != nil {
		return err
	}

	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return err
	}

	var boundaries []interface{}
	for _, b := range result.Features {
		region, ok := b.Properties["ADM1_EN"].(string)
		if !ok {
			return fmt.Errorf("invalid region value, %+v", b.Properties["ADM1_EN"])
		}

		province, ok := b.Properties["ADM2_EN"].(string)
		if !ok {
			return fmt.Errorf("invalid province value, %+v", b.Properties["ADM2_EN"])
		}

		boundaries = append(boundaries, schema.Boundary{
			Country:  "Philippines",
			Region:   region,
			Province: province,
			Geometry: b.Geometry,
		})
	}

	if _, err := client.Database(dbName).Collection(schema.BoundaryCollection).InsertMany(context.Background(), boundaries); err != nil {
		return err
	}

	return nil
}
