package horizon

import (
	"fmt"

	"github.com/twpayne/go-proj/v11"
)

// Projector converts WGS84 coordinates into the raster's projected CRS.
type Projector interface {
	Project(lat, lng float64) (x, y float64, err error)
}

// CRSProjector projects through PROJ into the CRS read from the
// raster's spatial-reference metadata. The CRS always comes from the
// file; hardcoding a zone here would silently break every raster
// outside it.
type CRSProjector struct {
	pj *proj.PJ
}

// NewCRSProjector builds a WGS84 transform to the given CRS (WKT or
// any other form PROJ accepts). A malformed CRS fails here, at load
// time, never per query.
func NewCRSProjector(crs string) (*CRSProjector, error) {
	pj, err := proj.NewCRSToCRS("EPSG:4326", crs, nil)
	if err != nil {
		return nil, fmt.Errorf("create projection from spatial reference: %w", err)
	}

	return &CRSProjector{pj: pj}, nil
}

// Project converts WGS84 decimal degrees to projected coordinates.
// EPSG:4326 authority order puts latitude first.
func (p *CRSProjector) Project(lat, lng float64) (float64, float64, error) {
	coord, err := p.pj.Forward(proj.NewCoord(lat, lng, 0, 0))
	if err != nil {
		return 0, 0, err
	}

	return coord.X(), coord.Y(), nil
}
