package geo

import "math"

// WGS84 equatorial radius, meters.
const earthRadius = 6378137.0

func deg2rad(deg float64) float64 { return deg * (math.Pi / 180.0) }
func rad2deg(rad float64) float64 { return rad * (180.0 / math.Pi) }

// Destination returns the WGS84 coordinate reached by traveling
// distanceMeters from (lat, lng) along the given compass bearing
// (0 = north, clockwise) over a spherical earth.
//
// Spherical accuracy is plenty here: the result only places horizon
// markers on a map, it never feeds back into the elevation math.
func Destination(lat, lng, bearingDeg, distanceMeters float64) (destLat, destLng float64) {
	phi := deg2rad(lat)
	lambda := deg2rad(lng)
	theta := deg2rad(bearingDeg)
	delta := distanceMeters / earthRadius

	phi2 := math.Asin(math.Sin(phi)*math.Cos(delta) + math.Cos(phi)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi),
		math.Cos(delta)-math.Sin(phi)*math.Sin(phi2),
	)

	// normalize longitude to [-180, 180)
	destLng = math.Mod(rad2deg(lambda2)+540.0, 360.0) - 180.0
	destLat = rad2deg(phi2)

	return destLat, destLng
}
