// Package polar converts between longitude/latitude on a sphere and
// Cartesian coordinates. Y is up; longitude 0 faces -Z.
package polar

import (
	"math"

	"geomkit/internal/mathutil"
)

// ToCartesian returns the point at lon, lat (degrees) on a sphere of the
// given radius centred on the origin.
func ToCartesian(lon, lat, radius float64) mathutil.Vec3 {
	phi := mathutil.Deg2Rad(90 - lat)
	theta := mathutil.Deg2Rad(lon + 180)
	sinPhi := math.Sin(phi)

	return mathutil.Vec3{
		-(radius * sinPhi * math.Sin(theta)),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	}
}

// FromCartesian returns the longitude and latitude (degrees) of v. The
// radius of v does not matter.
func FromCartesian(v mathutil.Vec3) (lon, lat float64) {
	lon = mathutil.Rad2Deg(math.Atan2(v[0], -v[2]))
	length := math.Sqrt(v[0]*v[0] + v[2]*v[2])
	lat = mathutil.Rad2Deg(math.Atan2(v[1], length))
	return lon, lat
}
