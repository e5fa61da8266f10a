//go:build ebitengine

package rcgal

import "golang.org/x/image/math/f64"
import "github.com/hajimehoshi/ebiten/v2"

// Ebitengine-related additional utility methods. Only available
// when building with the "ebitengine" tag.

// Returns the point transformed by the given [ebiten.GeoM].
// Errors are the same as in [Point.Transform]().
//
// [ebiten.GeoM]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#GeoM
func (self Point) ApplyGeoM(geoM ebiten.GeoM) (Point, error) {
	return self.Transform(geoMToAff3(geoM))
}

// Returns the vector transformed by the linear part of the given
// [ebiten.GeoM]. Errors are the same as in [Vector.Transform]().
//
// [ebiten.GeoM]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#GeoM
func (self Vector) ApplyGeoM(geoM ebiten.GeoM) (Vector, error) {
	return self.Transform(geoMToAff3(geoM))
}

func geoMToAff3(geoM ebiten.GeoM) f64.Aff3 {
	return f64.Aff3{
		geoM.Element(0, 0), geoM.Element(0, 1), geoM.Element(0, 2),
		geoM.Element(1, 0), geoM.Element(1, 1), geoM.Element(1, 2),
	}
}
