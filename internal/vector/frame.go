package vector

import (
	"fmt"

	"github.com/roach88/logchart/internal/logtable"
)

// VectorFrame is a rotation applied to the standard basis, together with
// the angular-velocity vector that produced it.
type VectorFrame struct {
	Rotation Mat3
	Basis    [3]Vec3
	Rotated  [3]Vec3
	Omega    Vec3
}

// NewFrame rotates each standard basis vector by r.
// Rotated[i] is r·Basis[i], i.e. the rows of (r·Bᵀ)ᵀ.
func NewFrame(r Mat3, omega Vec3) VectorFrame {
	f := VectorFrame{
		Rotation: r,
		Basis:    StandardBasis(),
		Omega:    omega,
	}
	for i, b := range f.Basis {
		f.Rotated[i] = r.MulVec(b)
	}
	return f
}

// LoadFrame reads a rotation-matrix log and an angular-velocity log and
// combines them. Load failures keep the logtable error types.
func LoadFrame(rotationPath, omegaPath, delimiter string) (VectorFrame, error) {
	rows, err := logtable.LoadMatrix(rotationPath, delimiter)
	if err != nil {
		return VectorFrame{}, err
	}
	r, err := MatFromRows(rows)
	if err != nil {
		return VectorFrame{}, &logtable.MalformedRowError{Path: rotationPath, Line: 1, Reason: err.Error()}
	}

	rows, err = logtable.LoadMatrix(omegaPath, delimiter)
	if err != nil {
		return VectorFrame{}, err
	}
	w, err := VecFromRows(rows)
	if err != nil {
		return VectorFrame{}, &logtable.MalformedRowError{Path: omegaPath, Line: 1, Reason: err.Error()}
	}

	return NewFrame(r, w), nil
}

// String renders the frame the way the rigid-body driver printed it.
func (f VectorFrame) String() string {
	return fmt.Sprintf("rotated=%v omega=%v", f.Rotated, f.Omega)
}
