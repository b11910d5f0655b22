package svgpath

import (
	"math"
)

// Affine is a 2D affine transform. The coefficients (N0, ..., N5) stand for
// the matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// The arc converter uses it to map unit-circle control points onto an
// ellipse. [PathData.Transform] applies one to parsed paths.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves every point where it is.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale scales x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Translate moves every point by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates by th radians around the origin. Positive angles turn the
// positive x axis towards the positive y axis, which is clockwise on screen
// since path data is y-down.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate returns aff followed by [Rotate](th).
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenTranslate returns aff followed by [Translate](v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
