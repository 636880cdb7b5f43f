package flightdata

import "math"

const earthRadiusKm = 6371.0

// Haversine returns the great circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	r1 := lat1 * math.Pi / 180
	r2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(r1)*math.Cos(r2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// boundingBox expands a point into the lat/lon bounds string the live feed
// expects: "north,south,west,east". The radius is approximated in degrees;
// the exact closest aircraft is then decided by Haversine over the results.
func boundingBox(lat, lon, radiusKm float64) (north, south, west, east float64) {
	dLat := radiusKm / 111.2
	dLon := radiusKm / (111.2 * math.Cos(lat*math.Pi/180))
	return lat + dLat, lat - dLat, lon - dLon, lon + dLon
}
