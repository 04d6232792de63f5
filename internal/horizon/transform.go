// Package horizon computes terrain horizon profiles from gridded
// elevation data: for an observer coordinate it finds, per compass
// direction, the terrain sample with the greatest elevation angle and
// the distance to it.
package horizon

// Affine is a 6-coefficient geotransform in the GDAL convention:
// originX, pixelWidth, rotationX, originY, rotationY, pixelHeight.
// It maps pixel indexes to coordinates in the raster's projected CRS.
type Affine [6]float64

// PixelWidth returns the X resolution (signed).
func (a Affine) PixelWidth() float64 {
	return a[1]
}

// PixelHeight returns the Y resolution (signed, negative for
// north-up rasters).
func (a Affine) PixelHeight() float64 {
	return a[5]
}

// Project converts a fractional pixel position to projected
// coordinates, rotation terms included.
func (a Affine) Project(px, py float64) (x, y float64) {
	x = a[0] + px*a[1] + py*a[2]
	y = a[3] + px*a[4] + py*a[5]
	return x, y
}

// PixelOf converts projected coordinates to a fractional pixel
// position. Rotation terms are ignored; north-up rasters carry zeros
// there anyway.
func (a Affine) PixelOf(x, y float64) (px, py float64) {
	px = (x - a[0]) / a[1]
	py = (y - a[3]) / a[5]
	return px, py
}
