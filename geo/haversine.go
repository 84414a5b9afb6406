package geo

import (
	"math"
	"sort"

	"github.com/ADAPortal/models"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in
// kilometres using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// SortByDistance annotates each location that has coordinates with its
// distance from the given point and sorts the slice nearest first.
// Locations without coordinates sort last, in their original order.
func SortByDistance(locations []models.Location, lat, lon float64) {
	for i := range locations {
		loc := &locations[i]
		if loc.Latitude == nil || loc.Longitude == nil {
			loc.Distance_Km = nil
			continue
		}
		d := DistanceKm(lat, lon, *loc.Latitude, *loc.Longitude)
		loc.Distance_Km = &d
	}

	sort.SliceStable(locations, func(i, j int) bool {
		di, dj := locations[i].Distance_Km, locations[j].Distance_Km
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}
