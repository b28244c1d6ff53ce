package consts

import (
	"fmt"
	"strings"
)

type regionCenter struct {
	Latitude  float64
	Longitude float64
}

// PhRegionCenters maps PAGASA region names to an approximate centroid.
// Region-wide advisories arrive without coordinates and are pinned here.
var PhRegionCenters map[string]regionCenter

func init() {
	PhRegionCenters = make(map[string]regionCenter)

	PhRegionCenters["National Capital Region"] = regionCenter{14.5995, 121.0000}
	PhRegionCenters["Cordillera Administrative Region"] = regionCenter{17.3513, 121.1719}
	PhRegionCenters["Ilocos Region"] = regionCenter{16.0832, 120.6200}
	PhRegionCenters["Cagayan Valley"] = regionCenter{16.9754, 121.8107}
	PhRegionCenters["Central Luzon"] = regionCenter{15.4828, 120.7120}
	PhRegionCenters["Calabarzon"] = regionCenter{14.1008, 121.0794}
	PhRegionCenters["Mimaropa"] = regionCenter{13.0752, 121.4090}
	PhRegionCenters["Bicol Region"] = regionCenter{13.4210, 123.4137}
	PhRegionCenters["Western Visayas"] = regionCenter{11.0050, 122.5373}
	PhRegionCenters["Central Visayas"] = regionCenter{10.3157, 123.8854}
	PhRegionCenters["Eastern Visayas"] = regionCenter{11.2433, 125.0039}
	PhRegionCenters["Zamboanga Peninsula"] = regionCenter{8.1540, 123.2588}
	PhRegionCenters["Northern Mindanao"] = regionCenter{8.4542, 124.6319}
	PhRegionCenters["Davao Region"] = regionCenter{7.1907, 125.4553}
	PhRegionCenters["Soccsksargen"] = regionCenter{6.2707, 124.6857}
	PhRegionCenters["Caraga"] = regionCenter{8.8015, 125.7407}
	PhRegionCenters["Bangsamoro"] = regionCenter{6.9568, 124.2422}
}

// PhRegionCenter - approximate fallback coordinates for a region name
func PhRegionCenter(region string) (float64, float64, error) {
	center, ok := PhRegionCenters[region]
	if !ok {
		return 0, 0, fmt.Errorf("%s not exist", region)
	}
	return center.Latitude, center.Longitude, nil
}

// PhRegionKey - convert a region display name into key
func PhRegionKey(region string) (string, error) {
	if _, ok := PhRegionCenters[region]; !ok {
		return "", fmt.Errorf("%s not exist", region)
	}
	return strings.Replace(strings.ToLower(region), " ", "_", -1), nil
}
