// Package raster loads georeferenced elevation rasters through GDAL.
// Only the first band is read; it is materialized fully into memory so
// the rest of the program never touches GDAL again.
package raster

// #cgo pkg-config: gdal
// #include <gdal.h>
// #include <stdlib.h>
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

func init() {
	C.GDALAllRegister()
}

// Dataset is a fully materialized elevation raster: the first band's
// samples plus the georeferencing needed to place them. It owns the
// sample buffer for its whole lifetime; nothing mutates it after Open
// returns.
type Dataset struct {
	Projection   string // spatial reference of the file, as WKT
	Samples      []float32
	GeoTransform [6]float64
	Width        int
	Height       int
}

// Open reads the raster at path into memory. Missing georeferencing —
// no affine geotransform or no spatial reference — is a fatal load
// error, since no query could be placed on such a file.
func Open(path string) (*Dataset, error) {
	cstr := C.CString(path)
	defer C.free(unsafe.Pointer(cstr))

	ds := C.GDALOpen(cstr, C.GA_ReadOnly)
	if ds == nil {
		return nil, fmt.Errorf("open raster %s: unreadable or unsupported format", path)
	}
	defer C.GDALClose(ds)

	var transform [6]float64
	if C.GDALGetGeoTransform(ds, (*C.double)(&transform[0])) != C.CE_None {
		return nil, errors.New("raster has no affine geotransform")
	}

	projection := C.GoString(C.GDALGetProjectionRef(ds))
	if projection == "" {
		return nil, errors.New("raster has no spatial reference")
	}

	width := C.GDALGetRasterXSize(ds)
	height := C.GDALGetRasterYSize(ds)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster has invalid dimensions %dx%d", int(width), int(height))
	}

	samples := make([]float32, int(width)*int(height))
	band := C.GDALGetRasterBand(ds, 1)
	if C.GDALRasterIO(band, C.GF_Read, 0, 0, width, height,
		unsafe.Pointer(&samples[0]), width, height, C.GDT_Float32, 0, 0) != C.CE_None {
		return nil, errors.New("failed to read elevation band")
	}

	return &Dataset{
		Projection:   projection,
		Samples:      samples,
		GeoTransform: transform,
		Width:        int(width),
		Height:       int(height),
	}, nil
}
