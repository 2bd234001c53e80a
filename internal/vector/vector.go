// Package vector holds the small amount of 3D linear algebra needed to draw
// a rigid body's orientation: a rotation matrix applied to the standard basis,
// plus its angular-velocity vector.
package vector

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector.
type Vec3 [3]float64

// Mat3 is a 3x3 matrix indexed [row][col].
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// StandardBasis returns the orthonormal basis x, y, z.
func StandardBasis() [3]Vec3 {
	return [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Scale returns v multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// MatFromRows converts a loaded matrix log into a Mat3. The log must be
// exactly three rows of three values.
func MatFromRows(rows [][]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != 3 {
		return m, fmt.Errorf("rotation matrix: expected 3 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if len(r) != 3 {
			return m, fmt.Errorf("rotation matrix: row %d: expected 3 values, got %d", i+1, len(r))
		}
		copy(m[i][:], r)
	}
	return m, nil
}

// VecFromRows converts a loaded vector log into a Vec3. Either a single row
// of three values or three rows of one value are accepted.
func VecFromRows(rows [][]float64) (Vec3, error) {
	var v Vec3
	switch {
	case len(rows) == 1 && len(rows[0]) == 3:
		copy(v[:], rows[0])
	case len(rows) == 3 && len(rows[0]) == 1:
		for i := range rows {
			v[i] = rows[i][0]
		}
	default:
		return v, fmt.Errorf("vector: expected 3 values, got %d row(s)", len(rows))
	}
	return v, nil
}
