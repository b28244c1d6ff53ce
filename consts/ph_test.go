package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/consts"
)

func TestPhRegionKey(t *testing.T) {
	mapping := map[string]string{
		"National Capital Region":          "national_capital_region",
		"Cordillera Administrative Region": "cordillera_administrative_region",
		"Ilocos Region":                    "ilocos_region",
		"Cagayan Valley":                   "cagayan_valley",
		"Central Luzon":                    "central_luzon",
		"Calabarzon":                       "calabarzon",
		"Mimaropa":                         "mimaropa",
		"Bicol Region":                     "bicol_region",
		"Western Visayas":                  "western_visayas",
		"Central Visayas":                  "central_visayas",
		"Eastern Visayas":                  "eastern_visayas",
		"Zamboanga Peninsula":              "zamboanga_peninsula",
		"Northern Mindanao":                "northern_mindanao",
		"Davao Region":                     "davao_region",
		"Soccsksargen":                     "soccsksargen",
		"Caraga":                           "caraga",
		"Bangsamoro":                       "bangsamoro",
	}

	for key, value := range mapping {
		actual, _ := consts.PhRegionKey(key)
		assert.Equal(t, value, actual, "wrong key")
	}

	_, err := consts.PhRegionKey("Atlantis")
	assert.Error(t, err)
}

func TestPhRegionCenter(t *testing.T) {
	lat, lng, err := consts.PhRegionCenter("Eastern Visayas")
	assert.NoError(t, err)
	assert.Equal(t, 11.2433, lat)
	assert.Equal(t, 125.0039, lng)

	_, _, err = consts.PhRegionCenter("Atlantis")
	assert.Error(t, err)
}
