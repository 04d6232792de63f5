package horizon

import "math"

// Result is the horizon for one compass direction.
type Result struct {
	Direction int     `json:"direction"`
	Angle     float64 `json:"elevationAngleDegrees"`
	Distance  float64 `json:"distanceKm"`
}

// ScanDirection marches outward from the observer pixel along the
// given compass bearing (0 = north, 90 = east) in whole-pixel steps
// and returns the sample with the greatest elevation angle. That is
// the horizon: the steepest obstruction on the ray, not the nearest
// or the farthest. Equal angles keep the first (nearest) sample.
//
// The march ends when the ray leaves the grid; if it never touched an
// in-bounds pixel the zero sentinel is returned, which is
// indistinguishable from a perfectly flat horizon.
func ScanDirection(g *Grid, obsX, obsY float64, direction int, baseElevation float64) Result {
	rad := float64(direction) * math.Pi / 180
	stepX := math.Sin(rad)
	stepY := -math.Cos(rad) // pixel rows grow southward

	pixelSize := g.PixelSizeMeters()
	maxAngle := math.Inf(-1)
	maxDistance := 0.0

	for step := 1; ; step++ {
		px := int(math.Floor(obsX + stepX*float64(step)))
		py := int(math.Floor(obsY + stepY*float64(step)))
		if !g.InBounds(px, py) {
			break
		}

		distance := float64(step) * pixelSize
		angle := math.Atan2(g.SampleAt(px, py)-baseElevation, distance) * 180 / math.Pi

		if angle > maxAngle {
			maxAngle = angle
			maxDistance = distance
		}
	}

	if math.IsInf(maxAngle, -1) {
		return Result{Direction: direction}
	}

	return Result{
		Direction: direction,
		Angle:     maxAngle,
		Distance:  maxDistance / 1000,
	}
}
