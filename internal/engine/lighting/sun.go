// Package lighting provides the directional key light for the scene.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toothview/pkg/math"
)

// Sun is a directional light given by angles in degrees. Longitude rotates
// around Y starting at +Z; latitude is elevation above the horizon.
type Sun struct {
	Longitude float32
	Latitude  float32
}

// DefaultSun lights the model from the upper right front.
var DefaultSun = Sun{Longitude: 35, Latitude: 55}

// Direction returns the normalized vector pointing towards the light.
func (s Sun) Direction() math.Vec3 {
	lon := s.Longitude * math32.Pi / 180
	lat := s.Latitude * math32.Pi / 180

	return math.Vec3{
		X: math32.Cos(lat) * math32.Sin(lon),
		Y: math32.Sin(lat),
		Z: math32.Cos(lat) * math32.Cos(lon),
	}
}
